package promoControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/pricing"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

type ValidateRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required"`
}

// POST /promo/validate checks a code against a subtotal and reports the
// discount it would grant. Unknown codes are a negative result, not an error.
func ValidatePromoHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promo, err := s.GetPromoByCode(c.Request.Context(), req.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate promo code"})
			return
		}
		if promo == nil {
			c.JSON(http.StatusOK, gin.H{"valid": false, "reason": "Unknown promo code"})
			return
		}
		if err := pricing.ValidatePromo(promo, req.Subtotal, time.Now()); err != nil {
			c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":    true,
			"code":     promo.Code,
			"discount": pricing.PromoDiscount(promo, req.Subtotal),
		})
	}
}

type PromoInput struct {
	Code          string     `json:"code" binding:"required"`
	DiscountType  string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value" binding:"required,gt=0"`
	MinPurchase   float64    `json:"min_purchase"`
	MaxDiscount   float64    `json:"max_discount"`
	Active        bool       `json:"active"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

// GET /admin/promos
func ListPromoCodes(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		promos, err := s.ListPromoCodes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo codes"})
			return
		}
		c.JSON(http.StatusOK, promos)
	}
}

// POST /admin/promos
func CreatePromoCode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		promo := models.PromoCode{
			Code:          input.Code,
			DiscountType:  models.DiscountType(input.DiscountType),
			DiscountValue: input.DiscountValue,
			MinPurchase:   input.MinPurchase,
			MaxDiscount:   input.MaxDiscount,
			Active:        input.Active,
			ExpiresAt:     input.ExpiresAt,
		}
		if err := s.CreatePromoCode(c.Request.Context(), &promo); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
			return
		}
		c.JSON(http.StatusCreated, promo)
	}
}

// DELETE /admin/promos/:id
func DeletePromoCode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo id"})
			return
		}
		if err := s.DeletePromoCode(c.Request.Context(), uint(id)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
	}
}
