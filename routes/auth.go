package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/auth"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
)

// SetupAuthRoutes registers register/login/logout and guest identity
// creation. The credential endpoints sit behind the rate limiter.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	authGroup.Use(d.AuthRate.Middleware())
	{
		authGroup.POST("/register", auth.RegisterHandler(d.Store, d.Engine, d.Tracker, d.Bus, d.Cfg.JWTSecret))
		authGroup.POST("/login", auth.LoginHandler(d.Store, d.Engine, d.Tracker, d.Bus, d.Cfg.JWTSecret))
		authGroup.POST("/guest", auth.CreateGuestHandler(d.Store, d.Cfg.JWTSecret, d.Cfg.GuestTTL))
	}

	// Logout needs the token so it can clear the right cart.
	r.POST("/auth/logout", middleware.ValidateToken(d.Cfg.JWTSecret), auth.LogoutHandler(d.Store, d.Bus))
}
