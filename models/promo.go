package models

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode codes are stored uppercase and matched case-insensitively.
type PromoCode struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Code          string       `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType  DiscountType `gorm:"type:VARCHAR(20)" json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	MinPurchase   float64      `json:"min_purchase"`
	MaxDiscount   float64      `json:"max_discount"` // 0 = no cap
	Active        bool         `json:"active"`
	ExpiresAt     *time.Time   `json:"expires_at"` // nil = never expires
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
