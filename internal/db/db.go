package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/conversation"
)

// Connect opens a GORM connection. mysql is the production driver; sqlite
// keeps local development dependency free.
func Connect(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "", "mysql":
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&conversation.Turn{})
}
