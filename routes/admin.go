package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/nisharmultani/girlsecret-sub000/controllers/admin"
	orderControllers "github.com/nisharmultani/girlsecret-sub000/controllers/order"
	productControllers "github.com/nisharmultani/girlsecret-sub000/controllers/product"
	promoControllers "github.com/nisharmultani/girlsecret-sub000/controllers/promo"
	referralControllers "github.com/nisharmultani/girlsecret-sub000/controllers/referral"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.Cfg.AdminAPIKey))
	{
		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productControllers.GetProducts(d.Store))
			productAdmin.POST("", productControllers.CreateProduct(d.Store))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(d.Store))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(d.Store))
		}

		// Order management
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.Store))
			orderAdmin.GET("/export-excel", adminControllers.ExportOrdersToExcel(d.Store))
			orderAdmin.GET("/feed", orderControllers.OrderFeedHandler(d.Bus))
			orderAdmin.PUT("/:ref/status", orderControllers.UpdateOrderStatusHandler(d.Store, d.Mailer, d.Bus))
			orderAdmin.PUT("/:ref/payment", orderControllers.UpdatePaymentStatusHandler(d.Store, d.Bus))
		}

		// Promo codes
		promoAdmin := adminGroup.Group("/promos")
		{
			promoAdmin.GET("", promoControllers.ListPromoCodes(d.Store))
			promoAdmin.POST("", promoControllers.CreatePromoCode(d.Store))
			promoAdmin.DELETE("/:id", promoControllers.DeletePromoCode(d.Store))
		}

		// Referral programme
		referralAdmin := adminGroup.Group("/referrals")
		{
			referralAdmin.GET("", referralControllers.ListReferrals(d.Store))
			referralAdmin.POST("", referralControllers.CreateReferral(d.Store))
			referralAdmin.PUT("/:code", referralControllers.UpdateReferral(d.Store))
		}

		// Banners
		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", adminControllers.CreateBanner(d.Store))
			bannerAdmin.DELETE("/:id", adminControllers.DeleteBanner(d.Store))
		}
	}
}
