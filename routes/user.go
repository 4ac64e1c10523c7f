package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/auth"
	cartControllers "github.com/nisharmultani/girlsecret-sub000/controllers/cart"
	orderControllers "github.com/nisharmultani/girlsecret-sub000/controllers/order"
	reviewControllers "github.com/nisharmultani/girlsecret-sub000/controllers/review"
	userControllers "github.com/nisharmultani/girlsecret-sub000/controllers/user"
	wishlistControllers "github.com/nisharmultani/girlsecret-sub000/controllers/wishlist"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a user token.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Cfg.JWTSecret), middleware.RequireRole(auth.RoleUser))
	{
		// Profile
		userGroup.GET("/", userControllers.GetUser(d.Store))
		userGroup.PUT("/", userControllers.UpdateUser(d.Store))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(d.Store))
			cartGroup.POST("/", cartControllers.UpdateCartItem(d.Store, d.Bus))
			cartGroup.POST("/quote", cartControllers.QuoteCart(d.Store, d.Cfg))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Store, d.Bus))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(d.Store, d.Bus))
		}

		// Wishlist
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("/", wishlistControllers.GetWishlist(d.Engine))
			wishGroup.POST("/:product_id", wishlistControllers.AddToWishlist(d.Engine))
			wishGroup.POST("/:product_id/toggle", wishlistControllers.ToggleWishlist(d.Engine))
			wishGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(d.Engine))
		}

		// Orders
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrderHandler(d.Store, d.Tracker, d.Mailer, d.Bus, d.Cfg))
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(d.Store))
			orderGroup.GET("/:ref", orderControllers.GetOrderByRefHandler(d.Store))
		}

		// Reviews
		userGroup.POST("/reviews", reviewControllers.CreateReview(d.Store))
	}
}
