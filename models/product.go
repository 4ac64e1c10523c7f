package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"` // current selling price
	OriginalPrice float64 `json:"original_price"`        // pre-discount price, 0 when never discounted
	Image         string  `json:"image"`
	Category      string  `gorm:"index" json:"category"`
	Sizes         string  `json:"sizes"`  // comma separated, e.g. "S,M,L"
	Colors        string  `json:"colors"` // comma separated
	Stock         int     `json:"stock"`
	Featured      bool    `json:"featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
