package models

// Category — таблица categories
type Category struct {
	Base
	Title    string    `gorm:"not null"`
	Products []Product `gorm:"constraint:OnDelete:CASCADE"`
}
