package models

type Address struct {
	ID         uint     `gorm:"primaryKey"`
	CustomerID uint     `gorm:"not null"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	City       string   `gorm:"type:varchar(100)"`
	Country    string   `gorm:"type:varchar(100)"`
}

func (Address) TableName() string {
	return "address"
}
