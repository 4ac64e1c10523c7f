package models

import "time"

// WishlistEntry links a user to a product. The composite unique index keeps
// each product at most once per wishlist, so repeated adds are no-ops.
type WishlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
