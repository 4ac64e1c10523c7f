package reviewControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

type ReviewInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// POST /user/reviews
func CreateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, err := s.GetProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		user, err := s.GetUser(c.Request.Context(), userID.(string))
		if err != nil || user == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		review := models.Review{
			ProductID: input.ProductID,
			UserID:    user.ID,
			UserName:  user.FirstName,
			Rating:    input.Rating,
			Title:     input.Title,
			Body:      input.Body,
		}
		if err := s.CreateReview(c.Request.Context(), &review); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /products/:id/reviews
func GetProductReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		reviews, err := s.ListProductReviews(c.Request.Context(), uint(productID))
		if err != nil {
			log.Printf("list reviews: %v", err)
			c.JSON(http.StatusOK, []models.Review{})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /reviews/stats?product_id=1&product_id=2 returns rating summaries keyed by
// product ID. A storage failure degrades to an empty mapping so product
// pages still render.
func GetRatingStats(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ids []uint
		for _, raw := range c.QueryArray("product_id") {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, uint(id))
		}
		stats, err := s.RatingStats(c.Request.Context(), ids)
		if err != nil {
			log.Printf("rating stats: %v", err)
			c.JSON(http.StatusOK, map[uint]models.RatingStats{})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
