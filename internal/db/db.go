package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopcatalog/internal/models"
)

// Open подключается к БД и накатывает схему
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is empty (check your .env)")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the catalog tables.
// Shared with tests, which open their own (sqlite) connection.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
