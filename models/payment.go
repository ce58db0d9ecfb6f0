package models

import (
	"time"
)

const (
	PaymentModeCard = "CARD"
	PaymentModeUPI  = "UPI"

	PaymentStatusSuccess = "SUCCESS"
)

// Payment represents a payment transaction for an order. No uniqueness
// constraint guards against multiple successful payments per order.
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       uint       `gorm:"not null" json:"order_id"`
	Order         Order      `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PaymentMode   string     `gorm:"type:varchar(20)" json:"payment_mode"`
	PaymentStatus string     `gorm:"type:varchar(20)" json:"payment_status"`
	Amount        float64    `gorm:"type:decimal(12,2)" json:"amount"`
	ReferenceID   string     `gorm:"type:varchar(64)" json:"reference_id"`
	PaidAt        *time.Time `json:"paid_at"`
}

func (Payment) TableName() string {
	return "payment"
}

// PaymentModeFor alternates CARD/UPI by order id parity.
func PaymentModeFor(orderID uint) string {
	if orderID%2 == 0 {
		return PaymentModeCard
	}
	return PaymentModeUPI
}
