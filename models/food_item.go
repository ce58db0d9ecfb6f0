package models

// Category values are a convention of the seed data, not a check constraint.
const (
	CategoryVeg    = "VEG"
	CategoryNonVeg = "NON_VEG"
	CategoryDrink  = "DRINK"
)

type FoodItem struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"type:varchar(120);not null"`
	Price    float64 `gorm:"type:decimal(10,2);not null"`
	Category string  `gorm:"type:varchar(20);index:idx_food_item_category"`
	Version  uint    `gorm:"not null;default:0"`
}

func (FoodItem) TableName() string {
	return "food_item"
}

// CategoryFor cycles VEG/NON_VEG/DRINK by index modulo 3.
func CategoryFor(index int) string {
	switch index % 3 {
	case 0:
		return CategoryVeg
	case 1:
		return CategoryNonVeg
	default:
		return CategoryDrink
	}
}
