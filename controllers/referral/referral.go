package referralControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/referral"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

func scopeFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// POST /referral/track?code=JANE20 is called when a shopper lands with a
// referral code in the URL. Invalid codes are silently ignored so a stale
// link never breaks the landing page.
func TrackHandler(tracker *referral.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := scopeFromContext(c)
		if !ok {
			return
		}
		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
			return
		}

		rec, err := tracker.Track(c.Request.Context(), scope, code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track referral"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusOK, gin.H{"attributed": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"attributed":      true,
			"code":            rec.Code,
			"influencer_name": rec.InfluencerName,
			"promo_code":      rec.PromoCode,
		})
	}
}

// GET /referral/active returns the shopper's current attribution, if any. The
// paired promo code is what checkout auto-applies.
func ActiveHandler(tracker *referral.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := scopeFromContext(c)
		if !ok {
			return
		}
		rec, err := tracker.Active(c.Request.Context(), scope)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referral"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusOK, gin.H{"attributed": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"attributed":      true,
			"code":            rec.Code,
			"influencer_name": rec.InfluencerName,
			"promo_code":      rec.PromoCode,
		})
	}
}

type ReferralInput struct {
	Code           string  `json:"code" binding:"required"`
	InfluencerName string  `json:"influencer_name" binding:"required"`
	PromoCode      string  `json:"promo_code"`
	CommissionRate float64 `json:"commission_rate" binding:"gte=0,lte=100"`
	Active         bool    `json:"active"`
}

// GET /admin/referrals lists referrals with traffic/sales counters.
func ListReferrals(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		referrals, err := s.ListReferrals(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
			return
		}
		c.JSON(http.StatusOK, referrals)
	}
}

// POST /admin/referrals
func CreateReferral(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReferralInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		rec := models.Referral{
			Code:           input.Code,
			InfluencerName: input.InfluencerName,
			PromoCode:      input.PromoCode,
			CommissionRate: input.CommissionRate,
			Active:         input.Active,
		}
		if err := s.CreateReferral(c.Request.Context(), &rec); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referral"})
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// PUT /admin/referrals/:code updates name, promo pairing, rate or active
// flag. Counters are not writable here.
func UpdateReferral(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := s.GetReferralByCode(c.Request.Context(), c.Param("code"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referral"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referral not found"})
			return
		}

		var input ReferralInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		rec.InfluencerName = input.InfluencerName
		rec.PromoCode = input.PromoCode
		rec.CommissionRate = input.CommissionRate
		rec.Active = input.Active

		if err := s.UpdateReferral(c.Request.Context(), rec); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update referral"})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
