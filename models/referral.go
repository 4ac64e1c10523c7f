package models

import "time"

// Referral attributes traffic and sales to an influencer. The totals are
// counters mutated only by click and conversion tracking; they are never
// recomputed from order history.
type Referral struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Code             string    `gorm:"uniqueIndex;not null" json:"code"`
	InfluencerName   string    `json:"influencer_name"`
	PromoCode        string    `json:"promo_code"` // optional paired promo, auto-applied at checkout
	CommissionRate   float64   `json:"commission_rate"` // percent of order total
	TotalClicks      int64     `json:"total_clicks"`
	TotalConversions int64     `json:"total_conversions"`
	TotalRevenue     float64   `json:"total_revenue"`
	TotalCommission  float64   `json:"total_commission"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
