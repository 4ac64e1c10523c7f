package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/nisharmultani/girlsecret-sub000/controllers/admin"
	productControllers "github.com/nisharmultani/girlsecret-sub000/controllers/product"
	promoControllers "github.com/nisharmultani/girlsecret-sub000/controllers/promo"
	referralControllers "github.com/nisharmultani/girlsecret-sub000/controllers/referral"
	reviewControllers "github.com/nisharmultani/girlsecret-sub000/controllers/review"
	userControllers "github.com/nisharmultani/girlsecret-sub000/controllers/user"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
)

// SetupPublicRoutes registers the storefront endpoints that need no identity.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	r.GET("/products", productControllers.GetProducts(d.Store))
	r.GET("/products/featured", productControllers.GetFeaturedProducts(d.Store))
	r.GET("/products/slug/:slug", productControllers.GetProductBySlug(d.Store))
	r.GET("/products/:id", productControllers.GetProductByID(d.Store))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(d.Store))
	r.GET("/reviews/stats", reviewControllers.GetRatingStats(d.Store))

	r.GET("/banners", adminControllers.GetBanners(d.Store))
	r.GET("/postcode/:postcode", userControllers.LookupPostcode(d.Geo))
	r.POST("/promo/validate", promoControllers.ValidatePromoHandler(d.Store))

	// Referral attribution works for guests and signed-in users alike, so it
	// only needs a valid token, not a specific role.
	referralGroup := r.Group("/referral")
	referralGroup.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		referralGroup.POST("/track", referralControllers.TrackHandler(d.Tracker))
		referralGroup.GET("/active", referralControllers.ActiveHandler(d.Tracker))
	}
}
