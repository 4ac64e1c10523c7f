package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/pubsub"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

type CartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func identityFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// GET /user/cart
func GetUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		cart, err := s.GetCart(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if cart.Items == nil {
			cart.Items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, cart.Items)
	}
}

// POST /user/cart sets the quantity for one (product, size, color) line.
// Quantity <= 0 removes the line.
func UpdateCartItem(s *store.Store, bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := s.GetProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		item, err := s.UpsertCartItem(c.Request.Context(), userID, product, input.Size, input.Color, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		bus.Publish(pubsub.TopicCartChanged, userID)

		if item == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:product_id?size=&color=
func DeleteCartItem(s *store.Store, bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		found, err := s.RemoveCartItem(c.Request.Context(), userID, uint(productID), c.Query("size"), c.Query("color"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		bus.Publish(pubsub.TopicCartChanged, userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(s *store.Store, bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		if err := s.ClearCart(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		bus.Publish(pubsub.TopicCartChanged, userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
