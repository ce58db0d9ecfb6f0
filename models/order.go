package models

import (
	"time"
)

// Order lifecycle labels. The set is open-ended; the seed data only uses these.
const (
	StatusCreated   = "CREATED"
	StatusPaid      = "PAID"
	StatusDelivered = "DELIVERED"
)

type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index:idx_food_order_customer" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer"`
	OrderTime  time.Time `gorm:"not null;index:idx_food_order_time" json:"order_time"`
	Status     string    `gorm:"type:varchar(20);not null;default:'CREATED';index:idx_food_order_status" json:"status"`
	// TotalAmount is stored independently and is NOT kept consistent with the
	// sum of the order's items.
	TotalAmount float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	Version     uint        `gorm:"not null;default:0" json:"version"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	Payments    []Payment   `gorm:"foreignKey:OrderID" json:"payments"`
}

func (Order) TableName() string {
	return "food_order"
}

// OrderStatusFor cycles CREATED/PAID/DELIVERED by customer id modulo 3.
func OrderStatusFor(customerID uint) string {
	switch customerID % 3 {
	case 0:
		return StatusCreated
	case 1:
		return StatusPaid
	default:
		return StatusDelivered
	}
}
