package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/config"
	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/pricing"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

type QuoteRequest struct {
	PromoCode string `json:"promo_code"`
}

// POST /user/cart/quote prices the current cart, optionally with a promo
// code, without placing an order.
func QuoteCart(s *store.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}

		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := s.GetCart(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		subtotal := pricing.Subtotal(cart.Items)

		promo, promoErr := resolvePromo(c, s, req.PromoCode, subtotal)
		if promoErr != "" {
			c.JSON(http.StatusOK, gin.H{
				"totals":      pricing.Quote(cart.Items, nil, cfg.FreeShippingThreshold, cfg.ShippingFee),
				"promo_error": promoErr,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totals": pricing.Quote(cart.Items, promo, cfg.FreeShippingThreshold, cfg.ShippingFee),
		})
	}
}

// resolvePromo validates a promo code against the subtotal. An empty code
// resolves to no promo; an invalid one comes back as a message, not an error.
func resolvePromo(c *gin.Context, s *store.Store, code string, subtotal float64) (promo *models.PromoCode, reason string) {
	if code == "" {
		return nil, ""
	}
	p, err := s.GetPromoByCode(c.Request.Context(), code)
	if err != nil {
		return nil, "Could not validate promo code, try again"
	}
	if p == nil {
		return nil, "Unknown promo code"
	}
	if err := pricing.ValidatePromo(p, subtotal, time.Now()); err != nil {
		return nil, err.Error()
	}
	return p, ""
}
