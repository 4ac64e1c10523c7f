package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one cart line. Line identity is (CartID, ProductID, Size, Color):
// the same product in two sizes is two separate lines.
type CartItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CartID            uint      `gorm:"index" json:"cart_id"`
	ProductID         uint      `json:"product_id"`
	ProductName       string    `json:"product_name"`
	ProductSlug       string    `json:"product_slug"`
	ProductImage      string    `json:"product_image"`
	UnitPrice         float64   `json:"unit_price"`
	OriginalUnitPrice float64   `json:"original_unit_price"`
	Size              string    `json:"size"`
	Color             string    `json:"color"`
	Quantity          int       `json:"quantity"`
	AddedAt           time.Time `json:"added_at"`
}
