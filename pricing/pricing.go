// Package pricing holds the pure cart money math: subtotal, savings, promo
// discount and shipping. Nothing here touches storage.
package pricing

import (
	"errors"
	"time"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

var (
	ErrPromoInactive   = errors.New("promo code is not active")
	ErrPromoExpired    = errors.New("promo code has expired")
	ErrBelowMinimum    = errors.New("subtotal below the code's minimum purchase")
	ErrUnknownDiscount = errors.New("unknown discount type")
)

// Subtotal is the sum of unit price times quantity across all lines.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// ProductSavings is what the shopper saves versus original prices, separate
// from any promo discount. Lines never discounted contribute nothing.
func ProductSavings(items []models.CartItem) float64 {
	var savings float64
	for _, item := range items {
		if diff := item.OriginalUnitPrice - item.UnitPrice; diff > 0 {
			savings += diff * float64(item.Quantity)
		}
	}
	return savings
}

// ValidatePromo reports why a promo code cannot apply to the subtotal, or nil
// when it can. now is injected so expiry is testable.
func ValidatePromo(promo *models.PromoCode, subtotal float64, now time.Time) error {
	if !promo.Active {
		return ErrPromoInactive
	}
	if promo.ExpiresAt != nil && now.After(*promo.ExpiresAt) {
		return ErrPromoExpired
	}
	if subtotal < promo.MinPurchase {
		return ErrBelowMinimum
	}
	return nil
}

// PromoDiscount computes the discount a validated promo code grants on the
// subtotal. Zero when the subtotal misses the minimum purchase; percentage
// discounts are capped at MaxDiscount when set; the result never exceeds the
// subtotal.
func PromoDiscount(promo *models.PromoCode, subtotal float64) float64 {
	if promo == nil || subtotal < promo.MinPurchase {
		return 0
	}

	var discount float64
	switch promo.DiscountType {
	case models.DiscountPercentage:
		discount = subtotal * promo.DiscountValue / 100
		if promo.MaxDiscount > 0 && discount > promo.MaxDiscount {
			discount = promo.MaxDiscount
		}
	case models.DiscountFixed:
		discount = promo.DiscountValue
	default:
		return 0
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// ShippingCost applies the free-shipping threshold: at or above it shipping
// is free, below it the flat fee applies. An empty cart has subtotal 0, which
// sits below any positive threshold and so picks up the fee; order placement
// rejects empty carts before this matters.
func ShippingCost(subtotal, threshold, fee float64) float64 {
	if subtotal >= threshold {
		return 0
	}
	return fee
}

// Totals is a full checkout quote.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	ProductSavings float64 `json:"product_savings"`
	PromoDiscount  float64 `json:"promo_discount"`
	ShippingCost   float64 `json:"shipping_cost"`
	Total          float64 `json:"total"`
}

// Quote prices a cart snapshot with an optional promo code already validated
// by the caller.
func Quote(items []models.CartItem, promo *models.PromoCode, threshold, fee float64) Totals {
	subtotal := Subtotal(items)
	discount := PromoDiscount(promo, subtotal)
	shipping := ShippingCost(subtotal, threshold, fee)
	return Totals{
		Subtotal:       subtotal,
		ProductSavings: ProductSavings(items),
		PromoDiscount:  discount,
		ShippingCost:   shipping,
		Total:          subtotal - discount + shipping,
	}
}
