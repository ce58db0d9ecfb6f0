package seeder

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorderdb/config"
	"foodorderdb/models"
	"foodorderdb/utils"
)

// Seeder populates the schema with a synthetic dataset in foreign-key
// dependency order: customers, then addresses and food items, then orders,
// order items and payments. The whole run is a best-effort batch: the first
// insert the engine rejects aborts the run and leaves whatever was committed.
type Seeder struct {
	db  *gorm.DB
	cfg config.Config
	rng *rand.Rand
}

func New(db *gorm.DB, cfg config.Config) *Seeder {
	return &Seeder{
		db:  db,
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	customers, err := s.seedCustomers(ctx)
	if err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if err := s.seedAddresses(ctx, customers); err != nil {
		return fmt.Errorf("seed addresses: %w", err)
	}
	items, err := s.seedFoodItems(ctx)
	if err != nil {
		return fmt.Errorf("seed food items: %w", err)
	}
	orders, err := s.seedOrders(ctx, customers)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := s.seedOrderItems(ctx, orders, items); err != nil {
		return fmt.Errorf("seed order items: %w", err)
	}
	if err := s.seedPayments(ctx, orders); err != nil {
		return fmt.Errorf("seed payments: %w", err)
	}
	return nil
}

// seedCustomers derives name and email from the 1..N sequence index, which
// guarantees email uniqueness.
func (s *Seeder) seedCustomers(ctx context.Context) ([]models.Customer, error) {
	now := time.Now()
	customers := make([]models.Customer, s.cfg.Seed.Customers)
	for i := range customers {
		customers[i] = models.Customer{
			Name:      models.CustomerNameFor(i + 1),
			Email:     models.CustomerEmailFor(i + 1),
			CreatedAt: now,
		}
	}
	if err := s.create(ctx, customers); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Seeded %d customers", len(customers))
	return customers, nil
}

// seedAddresses inserts one address per customer. The schema allows several
// addresses per customer; this dataset keeps it 1:1.
func (s *Seeder) seedAddresses(ctx context.Context, customers []models.Customer) error {
	addresses := make([]models.Address, len(customers))
	for i, c := range customers {
		addresses[i] = models.Address{
			CustomerID: c.ID,
			City:       fmt.Sprintf("City-%d", i+1),
			Country:    fmt.Sprintf("Country-%d", i%5+1),
		}
	}
	if err := s.create(ctx, addresses); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d addresses", len(addresses))
	return nil
}

func (s *Seeder) seedFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	items := make([]models.FoodItem, s.cfg.Seed.Customers)
	for i := range items {
		items[i] = models.FoodItem{
			Name:     fmt.Sprintf("Food-Item-%d", i+1),
			Price:    s.randAmount(s.cfg.Seed.MinItemPrice, s.cfg.Seed.MaxItemPrice),
			Category: models.CategoryFor(i),
		}
	}
	if err := s.create(ctx, items); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Seeded %d food items", len(items))
	return items, nil
}

// seedOrders inserts one order per customer. TotalAmount is drawn
// independently and deliberately not reconciled with the order's items.
func (s *Seeder) seedOrders(ctx context.Context, customers []models.Customer) ([]models.Order, error) {
	now := time.Now()
	orders := make([]models.Order, len(customers))
	for i, c := range customers {
		orders[i] = models.Order{
			CustomerID:  c.ID,
			OrderTime:   now,
			Status:      models.OrderStatusFor(c.ID),
			TotalAmount: s.randAmount(s.cfg.Seed.MinOrderTotal, s.cfg.Seed.MaxOrderTotal),
		}
	}
	if err := s.create(ctx, orders); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Seeded %d orders", len(orders))
	return orders, nil
}

// seedOrderItems draws ItemsPerOrder independent uniform picks per order.
// Duplicate picks within one order are allowed. Price is copied from the
// picked item so it survives later menu price changes.
func (s *Seeder) seedOrderItems(ctx context.Context, orders []models.Order, items []models.FoodItem) error {
	orderItems := make([]models.OrderItem, 0, len(orders)*s.cfg.Seed.ItemsPerOrder)
	for _, o := range orders {
		for p := 0; p < s.cfg.Seed.ItemsPerOrder; p++ {
			pick := items[s.rng.Intn(len(items))]
			orderItems = append(orderItems, models.OrderItem{
				OrderID:    o.ID,
				FoodItemID: pick.ID,
				Quantity:   1 + s.rng.Intn(s.cfg.Seed.MaxQuantity),
				Price:      pick.Price,
			})
		}
	}
	if err := s.create(ctx, orderItems); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d order items", len(orderItems))
	return nil
}

// seedPayments inserts one SUCCESS payment per order, alternating mode by
// order id parity and backdating paid_at by order-id minutes.
func (s *Seeder) seedPayments(ctx context.Context, orders []models.Order) error {
	now := time.Now()
	payments := make([]models.Payment, len(orders))
	for i, o := range orders {
		paidAt := now.Add(-time.Duration(o.ID) * time.Minute)
		payments[i] = models.Payment{
			OrderID:       o.ID,
			PaymentMode:   models.PaymentModeFor(o.ID),
			PaymentStatus: models.PaymentStatusSuccess,
			Amount:        o.TotalAmount,
			ReferenceID:   uuid.NewString(),
			PaidAt:        &paidAt,
		}
	}
	if err := s.create(ctx, payments); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d payments", len(payments))
	return nil
}

func (s *Seeder) create(ctx context.Context, rows interface{}) error {
	return s.db.WithContext(ctx).CreateInBatches(rows, s.cfg.Database.CreateBatchSize).Error
}

// randAmount draws uniformly from [min, max) and truncates to two decimals.
// Truncation rather than rounding keeps the result strictly below max.
func (s *Seeder) randAmount(min, max float64) float64 {
	v := min + s.rng.Float64()*(max-min)
	return math.Floor(v*100) / 100
}
