package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/config"
	"github.com/nisharmultani/girlsecret-sub000/geocode"
	"github.com/nisharmultani/girlsecret-sub000/guest"
	"github.com/nisharmultani/girlsecret-sub000/mailer"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
	"github.com/nisharmultani/girlsecret-sub000/pubsub"
	"github.com/nisharmultani/girlsecret-sub000/referral"
	"github.com/nisharmultani/girlsecret-sub000/store"
	"github.com/nisharmultani/girlsecret-sub000/wishlist"
)

// Deps carries everything the handlers need; main builds it once.
type Deps struct {
	Store    *store.Store
	Guests   guest.Store
	Engine   *wishlist.Engine
	Tracker  *referral.Tracker
	Mailer   mailer.Provider
	Bus      *pubsub.Bus
	Geo      *geocode.Client
	AuthRate *middleware.RateLimiter
	Cfg      *config.Config
}

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public routes (no auth)
	SetupPublicRoutes(r, d)

	// Auth routes (register/login/guest, rate limited)
	SetupAuthRoutes(r, d)

	// User routes (JWT-protected, role user)
	SetupUserRoutes(r, d)

	// Guest routes (JWT-protected, role guest)
	SetupGuestRoutes(r, d)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, d)
}
