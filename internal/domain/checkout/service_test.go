package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

type fakeLookup struct {
	products map[uint]*catalog.Product
}

func (f *fakeLookup) ProductForOrder(id uint) (*catalog.Product, error) {
	return f.products[id], nil
}

type fakeStore struct {
	mu      sync.Mutex
	created []*order.Order
	nextID  uint
}

func (f *fakeStore) CreateOrder(draft *order.Draft, customer order.Customer) (*order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	o := &order.Order{
		ID:             f.nextID,
		CustomerName:   customer.Name,
		Email:          customer.Email,
		Phone:          customer.Phone,
		ShippingMethod: draft.ShippingMethod,
		Address:        draft.Address,
		TotalPrice:     draft.TotalPrice,
		ItemsSummary:   draft.ItemsSummary(),
		Status:         order.StatusNew,
		Lines:          draft.Lines,
	}
	f.created = append(f.created, o)
	return o, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type recordingNotifier struct {
	notified chan uint
	panics   bool
}

func (n *recordingNotifier) NotifyOrderCreated(_ context.Context, o *order.Order) {
	if n.panics {
		panic("smtp exploded")
	}
	n.notified <- o.ID
}

func newTestService(store *fakeStore, notifier Notifier) *Service {
	lookup := &fakeLookup{products: map[uint]*catalog.Product{
		1: {ID: 1, Name: "Pizza Margherita", Price: 149},
		2: {ID: 2, Name: "Pizza Salami", Price: 169},
	}}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(order.NewAssembler(lookup, 29), store, notifier, logger)
}

func validRequest() *CompleteOrderRequest {
	return &CompleteOrderRequest{
		Name:     "Jana Novak",
		Email:    "jana@example.com",
		Phone:    "+420777000111",
		Shipping: order.ShippingDelivery,
		Address:  "Main St 5",
	}
}

func TestCompleteOrderPersistsAndNotifies(t *testing.T) {
	store := &fakeStore{}
	notifier := &recordingNotifier{notified: make(chan uint, 1)}
	svc := newTestService(store, notifier)

	o, err := svc.CompleteOrder(context.Background(), cart.Cart{1: 2, 2: 1}, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(496), o.TotalPrice)
	assert.Equal(t, order.StatusNew, o.Status)
	assert.Equal(t, "Jana Novak", o.CustomerName)
	assert.Equal(t, 1, store.count())

	select {
	case id := <-notifier.notified:
		assert.Equal(t, o.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestCompleteOrderEmptyCartCreatesNothing(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &recordingNotifier{notified: make(chan uint, 1)})

	_, err := svc.CompleteOrder(context.Background(), cart.Cart{}, validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, store.count())
}

func TestCompleteOrderAllGhostCartCreatesNothing(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &recordingNotifier{notified: make(chan uint, 1)})

	// Products 7 and 8 never existed in the catalog.
	_, err := svc.CompleteOrder(context.Background(), cart.Cart{7: 1, 8: 3}, validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, store.count())
}

func TestCompleteOrderSurvivesNotifierPanic(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &recordingNotifier{panics: true})

	o, err := svc.CompleteOrder(context.Background(), cart.Cart{1: 1}, validRequest())
	require.NoError(t, err)
	assert.NotNil(t, o)
	assert.Equal(t, 1, store.count())

	// Give the background goroutine a moment to panic and recover.
	time.Sleep(50 * time.Millisecond)
}

func TestPreviewSkipsGhostsInDisplayedTotal(t *testing.T) {
	svc := newTestService(&fakeStore{}, &recordingNotifier{notified: make(chan uint, 1)})

	draft, err := svc.Preview(cart.Cart{1: 1, 999: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(149), draft.TotalPrice)
	require.Len(t, draft.Lines, 1)
}
