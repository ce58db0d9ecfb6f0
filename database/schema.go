package database

import (
	"gorm.io/gorm"

	"foodorderdb/models"
)

// Tables lists every entity with its table name, parents before children.
var Tables = []struct {
	Name  string
	Model interface{}
}{
	{"customer", &models.Customer{}},
	{"address", &models.Address{}},
	{"food_item", &models.FoodItem{}},
	{"food_order", &models.Order{}},
	{"order_item", &models.OrderItem{}},
	{"payment", &models.Payment{}},
}

// EnsureSchema creates or updates the six tables, their foreign keys and
// secondary indexes. Safe to run repeatedly: a second run leaves the schema
// structurally identical.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Address{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}

// Reset drops dependents before parents so foreign keys never block the drop:
// payment, order_item, food_order, food_item, address, customer.
func Reset(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.Payment{},
		&models.OrderItem{},
		&models.Order{},
		&models.FoodItem{},
		&models.Address{},
		&models.Customer{},
	)
}

// TableCounts returns the row count per table.
func TableCounts(db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, t := range Tables {
		var n int64
		if err := db.Model(t.Model).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[t.Name] = n
	}
	return counts, nil
}
