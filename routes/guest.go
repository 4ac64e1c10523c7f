package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/auth"
	cartControllers "github.com/nisharmultani/girlsecret-sub000/controllers/cart"
	wishlistControllers "github.com/nisharmultani/girlsecret-sub000/controllers/wishlist"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
)

// SetupGuestRoutes registers all "/guest/*" endpoints. A guest token scopes
// the Redis-backed cart and wishlist; nothing here touches the database
// beyond product validation.
func SetupGuestRoutes(r *gin.Engine, d Deps) {
	guestGroup := r.Group("/guest")
	guestGroup.Use(middleware.ValidateToken(d.Cfg.JWTSecret), middleware.RequireRole(auth.RoleGuest))
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetGuestCart(d.Guests))
			cartGroup.POST("/", cartControllers.UpdateGuestCartItem(d.Store, d.Guests))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(d.Guests))
			cartGroup.DELETE("/", cartControllers.ClearGuestCart(d.Guests))
		}

		// The wishlist handlers branch on role, so guests share them.
		wishGroup := guestGroup.Group("/wishlist")
		{
			wishGroup.GET("/", wishlistControllers.GetWishlist(d.Engine))
			wishGroup.POST("/:product_id", wishlistControllers.AddToWishlist(d.Engine))
			wishGroup.POST("/:product_id/toggle", wishlistControllers.ToggleWishlist(d.Engine))
			wishGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(d.Engine))
		}
	}
}
