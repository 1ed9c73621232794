package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

type Order struct {
	ID     uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string      `gorm:"not null;index" json:"userId"`
	Status OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems,omitempty"`
	// Total is derived from the line items on single-order reads; it is
	// never stored.
	Total     float64   `gorm:"-" json:"total,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItem captures the unit price at order time; it does not track the
// product's current price afterwards.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `gorm:"not null" json:"productId"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
