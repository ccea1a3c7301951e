// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Customer carries the checkout form fields that identify the buyer.
type Customer struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
	Phone string `form:"phone" binding:"required"`
}

// Service persists orders and their status. Orders are append-only except
// for the status field; nothing ever deletes one.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateOrder persists a draft and its line snapshot atomically and returns
// the stored order with its generated ID.
func (s *Service) CreateOrder(draft *Draft, customer Customer) (*Order, error) {
	if draft.IsEmpty() {
		return nil, fmt.Errorf("cannot create an order from an empty draft")
	}

	order := Order{
		CustomerName:   customer.Name,
		Email:          customer.Email,
		Phone:          customer.Phone,
		ShippingMethod: draft.ShippingMethod,
		Address:        draft.Address,
		TotalPrice:     draft.TotalPrice,
		ItemsSummary:   draft.ItemsSummary(),
		Status:         StatusNew,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range draft.Lines {
			draft.Lines[i].OrderID = order.ID
			if err := tx.Create(&draft.Lines[i]).Error; err != nil {
				return fmt.Errorf("failed to create order line: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The draft lines are the stored snapshot; no reload needed.
	order.Lines = draft.Lines
	return &order, nil
}

// ListOrders retrieves all orders, newest first.
func (s *Service) ListOrders() ([]Order, error) {
	var orders []Order
	if err := s.db.Preload("Lines").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// GetOrder retrieves a single order by ID, (nil, nil) when absent.
func (s *Service) GetOrder(id uint) (*Order, error) {
	var order Order
	result := s.db.Preload("Lines").Where("id = ?", id).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &order, nil
}

// UpdateStatus overwrites the status of an order unconditionally. The
// status vocabulary is admin-defined; no transition is validated. Returns
// false when the order does not exist, in which case nothing is written.
func (s *Service) UpdateStatus(id uint, status string) (bool, error) {
	result := s.db.Model(&Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
