package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/guest"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

// GET /guest/cart
func GetGuestCart(guests guest.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := identityFromContext(c)
		if !ok {
			return
		}
		lines, err := guests.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		if lines == nil {
			lines = []guest.CartLine{}
		}
		c.JSON(http.StatusOK, lines)
	}
}

// POST /guest/cart
func UpdateGuestCartItem(s *store.Store, guests guest.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := identityFromContext(c)
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

		lines, err := guests.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		lines = guest.UpsertLine(lines, guest.CartLine{
			ProductID:         product.ID,
			ProductName:       product.Name,
			ProductSlug:       product.Slug,
			ProductImage:      product.Image,
			UnitPrice:         product.Price,
			OriginalUnitPrice: product.OriginalPrice,
			Size:              input.Size,
			Color:             input.Color,
			Quantity:          input.Quantity,
			AddedAt:           time.Now(),
		})

		if err := guests.SaveCart(c.Request.Context(), guestID, lines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// DELETE /guest/cart/:product_id?size=&color=
func DeleteGuestCartItem(guests guest.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := identityFromContext(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		lines, err := guests.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		lines = guest.RemoveLine(lines, uint(productID), c.Query("size"), c.Query("color"))
		if err := guests.SaveCart(c.Request.Context(), guestID, lines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart item deleted"})
	}
}

// DELETE /guest/cart
func ClearGuestCart(guests guest.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := identityFromContext(c)
		if !ok {
			return
		}
		if err := guests.ClearCart(c.Request.Context(), guestID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
