package seeder

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"foodorderdb/config"
	"foodorderdb/database"
	"foodorderdb/models"
	"foodorderdb/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	os.Exit(m.Run())
}

func testConfig(name string) config.Config {
	conf := config.Default()
	conf.Database.Driver = "sqlite"
	conf.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	conf.Database.CreateBatchSize = 10
	conf.Seed.Customers = 30
	return conf
}

// setupSeededDB migrates a fresh in-memory database and runs a full seed pass.
func setupSeededDB(t *testing.T, name string) (*gorm.DB, config.Config) {
	conf := testConfig(name)
	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := New(db, conf).Run(context.Background()); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}
	return db, conf
}

func TestRunProducesExpectedVolumes(t *testing.T) {
	db, conf := setupSeededDB(t, "volumes")

	counts, err := database.TableCounts(db)
	assert.NoError(t, err)
	assert.Equal(t, Expected(conf), counts)

	assert.NoError(t, Report(context.Background(), db, conf))
}

func TestReportFailsOnVolumeMismatch(t *testing.T) {
	db, conf := setupSeededDB(t, "mismatch")

	assert.NoError(t, db.Exec("DELETE FROM payment WHERE id = 1").Error)
	assert.Error(t, Report(context.Background(), db, conf))
}

func TestEmailsUnique(t *testing.T) {
	db, conf := setupSeededDB(t, "emails")

	var distinct int64
	assert.NoError(t, db.Model(&models.Customer{}).Distinct("email").Count(&distinct).Error)
	assert.Equal(t, int64(conf.Seed.Customers), distinct)
}

func TestNoOrphanedRows(t *testing.T) {
	db, _ := setupSeededDB(t, "orphans")

	queries := map[string]string{
		"address":             "SELECT COUNT(*) FROM address a LEFT JOIN customer c ON a.customer_id = c.id WHERE c.id IS NULL",
		"order_item_order":    "SELECT COUNT(*) FROM order_item oi LEFT JOIN food_order o ON oi.order_id = o.id WHERE o.id IS NULL",
		"order_item_food":     "SELECT COUNT(*) FROM order_item oi LEFT JOIN food_item f ON oi.food_item_id = f.id WHERE f.id IS NULL",
		"payment":             "SELECT COUNT(*) FROM payment p LEFT JOIN food_order o ON p.order_id = o.id WHERE o.id IS NULL",
		"food_order_customer": "SELECT COUNT(*) FROM food_order o LEFT JOIN customer c ON o.customer_id = c.id WHERE c.id IS NULL",
	}
	for name, query := range queries {
		var orphaned int64
		assert.NoError(t, db.Raw(query).Scan(&orphaned).Error, name)
		assert.Zero(t, orphaned, "orphaned rows in %s", name)
	}
}

func TestOrderItemBounds(t *testing.T) {
	db, conf := setupSeededDB(t, "itembounds")

	var orderItems []models.OrderItem
	assert.NoError(t, db.Find(&orderItems).Error)
	assert.Len(t, orderItems, conf.Seed.Customers*conf.Seed.ItemsPerOrder)
	for _, oi := range orderItems {
		assert.GreaterOrEqual(t, oi.Quantity, 1)
		assert.LessOrEqual(t, oi.Quantity, conf.Seed.MaxQuantity)
		assert.GreaterOrEqual(t, oi.Price, conf.Seed.MinItemPrice)
		assert.Less(t, oi.Price, conf.Seed.MaxItemPrice)
	}
}

// Order item price must equal the current price of the picked food item:
// the generator copies it rather than re-deriving it.
func TestOrderItemPriceSnapshotsFoodItem(t *testing.T) {
	db, _ := setupSeededDB(t, "snapshot")

	var mismatched int64
	query := "SELECT COUNT(*) FROM order_item oi JOIN food_item f ON oi.food_item_id = f.id WHERE oi.price <> f.price"
	assert.NoError(t, db.Raw(query).Scan(&mismatched).Error)
	assert.Zero(t, mismatched)
}

func TestFoodItemShape(t *testing.T) {
	db, conf := setupSeededDB(t, "fooditems")

	var items []models.FoodItem
	assert.NoError(t, db.Order("id").Find(&items).Error)
	assert.Len(t, items, conf.Seed.Customers)

	perCategory := map[string]int{}
	for i, item := range items {
		assert.GreaterOrEqual(t, item.Price, conf.Seed.MinItemPrice)
		assert.Less(t, item.Price, conf.Seed.MaxItemPrice)
		assert.Equal(t, models.CategoryFor(i), item.Category)
		perCategory[item.Category]++
	}
	// 30 items cycle evenly across the three categories.
	assert.Equal(t, 10, perCategory[models.CategoryVeg])
	assert.Equal(t, 10, perCategory[models.CategoryNonVeg])
	assert.Equal(t, 10, perCategory[models.CategoryDrink])
}

func TestOrderShape(t *testing.T) {
	db, conf := setupSeededDB(t, "orders")

	var orders []models.Order
	assert.NoError(t, db.Find(&orders).Error)
	assert.Len(t, orders, conf.Seed.Customers)
	for _, o := range orders {
		assert.Equal(t, models.OrderStatusFor(o.CustomerID), o.Status)
		assert.GreaterOrEqual(t, o.TotalAmount, conf.Seed.MinOrderTotal)
		assert.Less(t, o.TotalAmount, conf.Seed.MaxOrderTotal)
		assert.Zero(t, o.Version)
	}
}

func TestPaymentShape(t *testing.T) {
	db, conf := setupSeededDB(t, "payments")
	now := time.Now()

	var orders []models.Order
	assert.NoError(t, db.Find(&orders).Error)
	totals := make(map[uint]float64, len(orders))
	for _, o := range orders {
		totals[o.ID] = o.TotalAmount
	}

	var payments []models.Payment
	assert.NoError(t, db.Find(&payments).Error)
	assert.Len(t, payments, conf.Seed.Customers)
	seenRefs := map[string]bool{}
	for _, p := range payments {
		assert.Equal(t, models.PaymentStatusSuccess, p.PaymentStatus)
		assert.Equal(t, models.PaymentModeFor(p.OrderID), p.PaymentMode)
		assert.Equal(t, totals[p.OrderID], p.Amount)
		if assert.NotNil(t, p.PaidAt) {
			// paid_at is backdated by order-id minutes.
			assert.True(t, p.PaidAt.Before(now))
		}
		assert.NotEmpty(t, p.ReferenceID)
		assert.False(t, seenRefs[p.ReferenceID], "duplicate payment reference %s", p.ReferenceID)
		seenRefs[p.ReferenceID] = true
	}
}

func TestAddressesOnePerCustomer(t *testing.T) {
	db, conf := setupSeededDB(t, "addresses")

	var total int64
	assert.NoError(t, db.Model(&models.Address{}).Count(&total).Error)
	assert.Equal(t, int64(conf.Seed.Customers), total)

	var singles int64
	query := "SELECT COUNT(*) FROM (SELECT customer_id FROM address GROUP BY customer_id HAVING COUNT(*) = 1) t"
	assert.NoError(t, db.Raw(query).Scan(&singles).Error)
	assert.Equal(t, int64(conf.Seed.Customers), singles)
}
