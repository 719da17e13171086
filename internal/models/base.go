package models

import "time"

// Base holds the columns shared by the catalog tables. CreatedAt and
// UpdatedAt are maintained by gorm; clients can never set them.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
