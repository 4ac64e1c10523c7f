// Package guest holds the anonymous shopper's state: cart lines, wishlist
// product IDs and the referral attribution. It lives in Redis keyed by guest
// ID and expires with the guest, so abandoned sessions clean themselves up.
package guest

import (
	"context"
	"time"
)

// CartLine mirrors a user cart line for shoppers who have not signed in.
// Line identity is (ProductID, Size, Color).
type CartLine struct {
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

// Attribution is a referral code sticking to a guest for a limited window.
type Attribution struct {
	Code      string    `json:"code"`
	ClickedAt time.Time `json:"clicked_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a Attribution) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// Store persists guest state. Absent keys read as empty, never as errors.
type Store interface {
	Cart(ctx context.Context, guestID string) ([]CartLine, error)
	SaveCart(ctx context.Context, guestID string, lines []CartLine) error
	ClearCart(ctx context.Context, guestID string) error

	Wishlist(ctx context.Context, guestID string) ([]uint, error)
	SaveWishlist(ctx context.Context, guestID string, productIDs []uint) error
	ClearWishlist(ctx context.Context, guestID string) error

	Attribution(ctx context.Context, guestID string) (*Attribution, error)
	SaveAttribution(ctx context.Context, guestID string, a Attribution) error
	ClearAttribution(ctx context.Context, guestID string) error
}

// UpsertLine merges a line into the slice: an existing line with the same
// (ProductID, Size, Color) gets the new quantity, otherwise the line is
// appended. A quantity of zero or less removes the line.
func UpsertLine(lines []CartLine, line CartLine) []CartLine {
	for i, l := range lines {
		if l.ProductID == line.ProductID && l.Size == line.Size && l.Color == line.Color {
			if line.Quantity <= 0 {
				return append(lines[:i], lines[i+1:]...)
			}
			lines[i].Quantity = line.Quantity
			lines[i].AddedAt = line.AddedAt
			return lines
		}
	}
	if line.Quantity <= 0 {
		return lines
	}
	return append(lines, line)
}

// RemoveLine drops the line matching (productID, size, color), if any.
func RemoveLine(lines []CartLine, productID uint, size, color string) []CartLine {
	for i, l := range lines {
		if l.ProductID == productID && l.Size == size && l.Color == color {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}

// AddID appends id unless already present.
func AddID(ids []uint, id uint) []uint {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

// RemoveID drops id if present.
func RemoveID(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// ContainsID reports whether id is present.
func ContainsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
