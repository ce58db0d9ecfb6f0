package seeder

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodorderdb/config"
	"foodorderdb/database"
	"foodorderdb/utils"
)

// Expected returns the per-table row counts a full run should produce: one
// address, order and payment per customer, one food item per customer, and
// itemsPerOrder order items per order.
func Expected(cfg config.Config) map[string]int64 {
	n := int64(cfg.Seed.Customers)
	return map[string]int64{
		"customer":   n,
		"address":    n,
		"food_item":  n,
		"food_order": n,
		"order_item": n * int64(cfg.Seed.ItemsPerOrder),
		"payment":    n,
	}
}

// Report logs the row count per table and compares it against the expected
// volume. A volume-only signal, not a referential check.
func Report(ctx context.Context, db *gorm.DB, cfg config.Config) error {
	counts, err := database.TableCounts(db.WithContext(ctx))
	if err != nil {
		return err
	}
	expected := Expected(cfg)
	for _, t := range database.Tables {
		utils.InfoLogger.Printf("%s: %d rows", t.Name, counts[t.Name])
	}
	for _, t := range database.Tables {
		if counts[t.Name] != expected[t.Name] {
			return fmt.Errorf("table %s has %d rows, expected %d", t.Name, counts[t.Name], expected[t.Name])
		}
	}
	return nil
}
