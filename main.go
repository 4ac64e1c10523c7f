package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nisharmultani/girlsecret-sub000/config"
	"github.com/nisharmultani/girlsecret-sub000/geocode"
	"github.com/nisharmultani/girlsecret-sub000/guest"
	"github.com/nisharmultani/girlsecret-sub000/mailer"
	"github.com/nisharmultani/girlsecret-sub000/middleware"
	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/pubsub"
	"github.com/nisharmultani/girlsecret-sub000/referral"
	"github.com/nisharmultani/girlsecret-sub000/routes"
	"github.com/nisharmultani/girlsecret-sub000/store"
	"github.com/nisharmultani/girlsecret-sub000/wishlist"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Init DB
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.WishlistEntry{},
		&models.PromoCode{},
		&models.Referral{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Banner{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Redis holds guest carts, wishlists and referral attributions.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	s := store.New(db)
	guests := guest.NewRedisStore(rdb, cfg.GuestTTL)
	bus := pubsub.NewBus()
	engine := wishlist.NewEngine(s, guests, cfg.MergeSettleDelay)
	tracker := referral.NewTracker(s, guests, cfg.ReferralTTL)
	geo := geocode.NewClient(cfg.PostcodeAPIBase)

	var provider mailer.Provider
	switch cfg.EmailProvider {
	case "resend":
		provider = mailer.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom)
	default:
		provider = mailer.LogProvider{}
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Store:    s,
		Guests:   guests,
		Engine:   engine,
		Tracker:  tracker,
		Mailer:   provider,
		Bus:      bus,
		Geo:      geo,
		AuthRate: middleware.NewRateLimiter(cfg.AuthRatePerSecond, cfg.AuthRateBurst),
		Cfg:      cfg,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
