package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver          string `yaml:"driver"`
		DSN             string `yaml:"DSN"`
		CreateBatchSize int    `yaml:"createBatchSize"`
		Recreate        bool   `yaml:"recreate"`
	} `yaml:"database"`
	Seed struct {
		Customers     int     `yaml:"customers"`
		ItemsPerOrder int     `yaml:"itemsPerOrder"`
		MaxQuantity   int     `yaml:"maxQuantity"`
		MinItemPrice  float64 `yaml:"minItemPrice"`
		MaxItemPrice  float64 `yaml:"maxItemPrice"`
		MinOrderTotal float64 `yaml:"minOrderTotal"`
		MaxOrderTotal float64 `yaml:"maxOrderTotal"`
	} `yaml:"seed"`
	Logging struct {
		LogLevel string `yaml:"logLevel"` // possible options are: trace, debug, info, warn, error, fatal, panic
	} `yaml:"logging"`
}

// Default returns the standard dataset profile: 300 customers, 3 items per
// order, item prices in [5, 25), order totals in [20, 70).
func Default() Config {
	var conf Config
	conf.Database.Driver = "mysql"
	conf.Database.DSN = "root:root@tcp(localhost:3306)/foodorder?charset=utf8mb4&parseTime=True"
	conf.Database.CreateBatchSize = 100
	conf.Seed.Customers = 300
	conf.Seed.ItemsPerOrder = 3
	conf.Seed.MaxQuantity = 3
	conf.Seed.MinItemPrice = 5.00
	conf.Seed.MaxItemPrice = 25.00
	conf.Seed.MinOrderTotal = 20.00
	conf.Seed.MaxOrderTotal = 70.00
	conf.Logging.LogLevel = "info"
	return conf
}

func Validate(conf Config) error {
	if conf.Database.Driver == "" {
		return fmt.Errorf("database driver must be set")
	}
	if conf.Database.DSN == "" {
		return fmt.Errorf("database DSN must be set")
	}
	if conf.Database.CreateBatchSize <= 0 {
		return fmt.Errorf("wrong value for database creation batch size: must be >0")
	}
	if conf.Seed.Customers <= 0 {
		return fmt.Errorf("wrong value for seed customers: must be >0")
	}
	if conf.Seed.ItemsPerOrder <= 0 || conf.Seed.MaxQuantity <= 0 {
		return fmt.Errorf("items per order and max quantity must be >0")
	}
	if conf.Seed.MinItemPrice < 0 || conf.Seed.MinItemPrice >= conf.Seed.MaxItemPrice {
		return fmt.Errorf("item price range [%v, %v) is invalid", conf.Seed.MinItemPrice, conf.Seed.MaxItemPrice)
	}
	if conf.Seed.MinOrderTotal < 0 || conf.Seed.MinOrderTotal >= conf.Seed.MaxOrderTotal {
		return fmt.Errorf("order total range [%v, %v) is invalid", conf.Seed.MinOrderTotal, conf.Seed.MaxOrderTotal)
	}
	return nil
}

// Parse loads the yaml config at path on top of the defaults, then applies
// DB_DRIVER/DB_DSN environment overrides so an operator can point the run at
// another database without touching the file.
func Parse(path string) (Config, error) {
	conf := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	} else if err := yaml.Unmarshal(file, &conf); err != nil {
		return Config{}, fmt.Errorf("cant unmarshall config: %w", err)
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		conf.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		conf.Database.DSN = dsn
	}
	if err := Validate(conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}
