package auth

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/pubsub"
	"github.com/nisharmultani/girlsecret-sub000/referral"
	"github.com/nisharmultani/girlsecret-sub000/wishlist"
)

const sessionTTL = 24 * time.Hour

// Users is the slice of the record store the auth handlers need.
type Users interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

// CartClearer clears a user's server-side cart (the logout cascade).
type CartClearer interface {
	ClearCart(ctx context.Context, userID string) error
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	GuestID   string `json:"guest_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	GuestID  string `json:"guest_id"`
}

// becomeUser runs the guest→user hand-off: the wishlist identity-change rule
// plus adopting any referral attribution. A failed merge never fails the
// login itself; the guest copy is kept so the merge retries on the next
// login. The returned status is surfaced to the frontend.
func becomeUser(ctx context.Context, engine *wishlist.Engine, tracker *referral.Tracker, userID, guestID string) ([]uint, string) {
	if guestID != "" {
		if err := tracker.Adopt(ctx, guestID, userID); err != nil {
			log.Printf("auth: referral adoption for %s failed: %v", userID, err)
		}
	}
	return syncWishlist(ctx, engine, userID, guestID)
}

func syncWishlist(ctx context.Context, engine *wishlist.Engine, userID, guestID string) ([]uint, string) {
	if guestID == "" {
		ids, err := engine.Load(ctx, wishlist.Identity{UserID: userID})
		if err != nil {
			log.Printf("auth: wishlist load for %s failed: %v", userID, err)
			return nil, "load-failed"
		}
		return ids, "no-guest-wishlist"
	}

	ids, err := engine.Sync(ctx, wishlist.Identity{UserID: userID, GuestID: guestID})
	if err != nil {
		log.Printf("auth: wishlist merge for %s failed: %v", userID, err)
		return nil, "merge-failed"
	}
	return ids, "merged"
}

// POST /auth/register
func RegisterHandler(users Users, engine *wishlist.Engine, tracker *referral.Tracker, bus *pubsub.Bus, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		existing, err := users.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
		}
		if err := users.CreateUser(c.Request.Context(), &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		wishlistIDs, mergeStatus := becomeUser(c.Request.Context(), engine, tracker, user.ID, req.GuestID)

		token, err := IssueToken(jwtSecret, user.ID, user.Email, RoleUser, sessionTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		bus.Publish(pubsub.TopicAuthChanged, user.ID)

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Registration successful",
			"token":        token,
			"user":         user,
			"wishlist":     wishlistIDs,
			"merge_status": mergeStatus,
		})
	}
}

// POST /auth/login
func LoginHandler(users Users, engine *wishlist.Engine, tracker *referral.Tracker, bus *pubsub.Bus, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		wishlistIDs, mergeStatus := becomeUser(c.Request.Context(), engine, tracker, user.ID, req.GuestID)

		token, err := IssueToken(jwtSecret, user.ID, user.Email, RoleUser, sessionTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		bus.Publish(pubsub.TopicAuthChanged, user.ID)

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"token":        token,
			"user":         user,
			"wishlist":     wishlistIDs,
			"merge_status": mergeStatus,
		})
	}
}

// POST /auth/logout destroys the session server-side: the cart is cleared
// and a change notification goes out so observers resynchronize.
func LogoutHandler(carts CartClearer, bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		if err := carts.ClearCart(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		bus.Publish(pubsub.TopicCartChanged, userID)
		bus.Publish(pubsub.TopicAuthChanged, userID)

		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
