package models

import "time"

// GuestUser anchors an anonymous shopper. Its ID scopes the Redis-held guest
// cart, wishlist and referral attribution until the guest registers or logs in.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
