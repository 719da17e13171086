package models

import "github.com/shopspring/decimal"

// Product — таблица products
type Product struct {
	Base
	Title           string `gorm:"not null"`
	CategoryID      uint   `gorm:"index;not null"`
	Category        Category
	Description     string          `gorm:"type:text"`
	Characteristics string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock           int             `gorm:"not null;default:0"`
	Images          []ProductImage  `gorm:"constraint:OnDelete:CASCADE"`
}
