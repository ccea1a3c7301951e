// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"
)

// Shipping methods form a closed set; anything else is rejected at binding.
const (
	ShippingDelivery = "delivery"
	ShippingPickup   = "pickup"
)

// PickupAddress is the sentinel stored instead of a street address when the
// customer picks the order up in person, regardless of any submitted value.
const PickupAddress = "in-store pickup"

// StatusNew is the status every order starts in. The rest of the status
// vocabulary is chosen freely by the admin and never validated.
const StatusNew = "New"

// Order represents a completed checkout. The item summary and total price
// are snapshots fixed at creation time: later catalog changes never affect
// a stored order. Only Status is mutable after creation.
type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerName   string    `gorm:"not null;size:255" json:"customer_name"`
	Email          string    `gorm:"not null;size:255" json:"email"`
	Phone          string    `gorm:"size:50" json:"phone"`
	ShippingMethod string    `gorm:"not null;size:50" json:"shipping_method"`
	Address        string    `gorm:"size:500" json:"address"`
	TotalPrice     int64     `gorm:"not null" json:"total_price"`
	ItemsSummary   string    `gorm:"type:text" json:"items_summary"`
	Status         string    `gorm:"not null;default:'New';size:100" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Lines []OrderLine `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines,omitempty"`
}

// OrderLine is a structured snapshot of one resolved cart line. It copies
// name and unit price from the catalog at assembly time and holds no live
// reference to the product row.
type OrderLine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	UnitPrice  int64     `gorm:"not null" json:"unit_price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderLine) TableName() string { return "order_lines" }

// Summary renders lines as the human-readable item string, e.g.
// "Pizza Margherita (2x), Coca-Cola 0.5l (1x)".
func Summary(lines []OrderLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s (%dx)", line.Name, line.Quantity))
	}
	return strings.Join(parts, ", ")
}
