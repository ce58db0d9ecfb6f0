package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodorderdb/config"
)

// Open connects to the configured database. MySQL is the production target;
// SQLite exists for local runs and tests.
func Open(conf config.Config) (*gorm.DB, error) {
	switch conf.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(conf.Database.DSN), &gorm.Config{})
	case "sqlite", "sqlite3":
		return gorm.Open(sqlite.Open(conf.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %s", conf.Database.Driver)
	}
}
