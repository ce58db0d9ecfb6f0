package models

import (
	"fmt"
	"time"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(150);unique;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_customer_created_at"`
	Version   uint      `gorm:"not null;default:0"`
}

func (Customer) TableName() string {
	return "customer"
}

// CustomerNameFor derives a customer name from a sequence index.
func CustomerNameFor(seq int) string {
	return fmt.Sprintf("Customer-%d", seq)
}

// CustomerEmailFor derives a unique email from a sequence index.
func CustomerEmailFor(seq int) string {
	return fmt.Sprintf("customer%d@example.com", seq)
}
