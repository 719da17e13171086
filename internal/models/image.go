package models

// ProductImage — таблица product_images
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index;not null"`
	Image     string `gorm:"not null"` // относительный путь, напр. "/uploads/abc123.jpg"
}
