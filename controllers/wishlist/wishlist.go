package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/wishlist"
)

// identity builds the wishlist identity from what the auth middleware set:
// a "user" role token carries a user ID, a "guest" role token a guest ID.
func identity(c *gin.Context) (wishlist.Identity, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return wishlist.Identity{}, false
	}
	id := v.(string)
	if role, _ := c.Get("role"); role == "guest" {
		return wishlist.Identity{GuestID: id}, true
	}
	return wishlist.Identity{UserID: id}, true
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return uint(id), true
}

// GET /wishlist
func GetWishlist(engine *wishlist.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity(c)
		if !ok {
			return
		}
		ids, err := engine.Load(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		if ids == nil {
			ids = []uint{}
		}
		c.JSON(http.StatusOK, gin.H{"product_ids": ids, "count": len(ids)})
	}
}

// POST /wishlist/:product_id
func AddToWishlist(engine *wishlist.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity(c)
		if !ok {
			return
		}
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		if err := engine.Add(c.Request.Context(), id, productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// DELETE /wishlist/:product_id
func RemoveFromWishlist(engine *wishlist.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity(c)
		if !ok {
			return
		}
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		if err := engine.Remove(c.Request.Context(), id, productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// POST /wishlist/:product_id/toggle
func ToggleWishlist(engine *wishlist.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identity(c)
		if !ok {
			return
		}
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		on, err := engine.Toggle(c.Request.Context(), id, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlisted": on})
	}
}
