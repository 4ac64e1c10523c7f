package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

// GuestUsers is the slice of the record store needed to anchor guests.
type GuestUsers interface {
	CreateGuestUser(ctx context.Context, g *models.GuestUser) error
}

// POST /auth/guest issues an anonymous identity so a shopper can build a
// cart and wishlist before registering.
func CreateGuestHandler(guests GuestUsers, jwtSecret string, guestTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + randomHex(16)

		g := models.GuestUser{
			ID:        guestID,
			ExpiresAt: time.Now().Add(guestTTL),
		}
		if err := guests.CreateGuestUser(c.Request.Context(), &g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
			return
		}

		token, err := IssueToken(jwtSecret, guestID, "", RoleGuest, guestTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": g.ExpiresAt,
		})
	}
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
