package pricing

import (
	"testing"
	"time"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

func item(price, original float64, qty int) models.CartItem {
	return models.CartItem{UnitPrice: price, OriginalUnitPrice: original, Quantity: qty}
}

func percentPromo(value, minPurchase, maxDiscount float64) *models.PromoCode {
	return &models.PromoCode{
		Code:          "SAVE10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: value,
		MinPurchase:   minPurchase,
		MaxDiscount:   maxDiscount,
		Active:        true,
	}
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{item(10, 0, 2), item(5.50, 0, 1)}
	if got := Subtotal(items); got != 25.50 {
		t.Errorf("Subtotal = %v, want 25.50", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Errorf("empty cart Subtotal = %v, want 0", got)
	}
}

func TestProductSavings(t *testing.T) {
	items := []models.CartItem{
		item(8, 10, 2),  // saves 4
		item(10, 0, 1),  // never discounted, original 0
		item(12, 12, 3), // no difference
	}
	if got := ProductSavings(items); got != 4 {
		t.Errorf("ProductSavings = %v, want 4", got)
	}
}

func TestPromoDiscountBelowMinimum(t *testing.T) {
	promo := percentPromo(10, 20, 0)
	if got := PromoDiscount(promo, 19.99); got != 0 {
		t.Errorf("discount below minimum = %v, want 0", got)
	}
}

func TestPromoDiscountPercentageClampedToMax(t *testing.T) {
	// SAVE10: 10% off, min £20, capped at £5. On £100 the raw 10% is £10.
	promo := percentPromo(10, 20, 5)
	if got := PromoDiscount(promo, 100); got != 5 {
		t.Errorf("discount = %v, want 5 (clamped)", got)
	}
}

func TestPromoDiscountPercentageNoCap(t *testing.T) {
	promo := percentPromo(10, 0, 0)
	if got := PromoDiscount(promo, 80); got != 8 {
		t.Errorf("discount = %v, want 8", got)
	}
}

func TestPromoDiscountFixedNeverExceedsSubtotal(t *testing.T) {
	promo := &models.PromoCode{
		DiscountType:  models.DiscountFixed,
		DiscountValue: 15,
		Active:        true,
	}
	if got := PromoDiscount(promo, 10); got != 10 {
		t.Errorf("discount = %v, want 10 (clamped to subtotal)", got)
	}
	if got := PromoDiscount(promo, 40); got != 15 {
		t.Errorf("discount = %v, want 15", got)
	}
}

func TestPromoDiscountNilPromo(t *testing.T) {
	if got := PromoDiscount(nil, 100); got != 0 {
		t.Errorf("discount = %v, want 0", got)
	}
}

func TestValidatePromo(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name     string
		promo    models.PromoCode
		subtotal float64
		want     error
	}{
		{"inactive", models.PromoCode{Active: false}, 100, ErrPromoInactive},
		{"expired", models.PromoCode{Active: true, ExpiresAt: &past}, 100, ErrPromoExpired},
		{"below minimum", models.PromoCode{Active: true, MinPurchase: 50}, 49, ErrBelowMinimum},
		{"valid", models.PromoCode{Active: true, MinPurchase: 50, ExpiresAt: &future}, 50, nil},
		{"valid no expiry", models.PromoCode{Active: true}, 10, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidatePromo(&tc.promo, tc.subtotal, now); got != tc.want {
				t.Errorf("ValidatePromo = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShippingCost(t *testing.T) {
	// £50 threshold, £4.99 fee.
	if got := ShippingCost(45, 50, 4.99); got != 4.99 {
		t.Errorf("shipping on £45 = %v, want 4.99", got)
	}
	if got := ShippingCost(55, 50, 4.99); got != 0 {
		t.Errorf("shipping on £55 = %v, want 0", got)
	}
	if got := ShippingCost(50, 50, 4.99); got != 0 {
		t.Errorf("shipping at threshold = %v, want 0 (free)", got)
	}
}

func TestQuote(t *testing.T) {
	items := []models.CartItem{item(20, 25, 2)} // subtotal 40, savings 10
	promo := percentPromo(10, 20, 0)            // 10% => 4

	got := Quote(items, promo, 50, 4.99)
	want := Totals{
		Subtotal:       40,
		ProductSavings: 10,
		PromoDiscount:  4,
		ShippingCost:   4.99,
		Total:          40.99,
	}
	if got != want {
		t.Errorf("Quote = %+v, want %+v", got, want)
	}
}

func TestQuoteEmptyCart(t *testing.T) {
	got := Quote(nil, nil, 50, 4.99)
	if got.Subtotal != 0 || got.PromoDiscount != 0 {
		t.Errorf("empty cart quote = %+v", got)
	}
	// Subtotal 0 is below the threshold, so the flat fee branch applies.
	if got.ShippingCost != 4.99 {
		t.Errorf("empty cart shipping = %v, want 4.99", got.ShippingCost)
	}
}
