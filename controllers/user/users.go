package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/geocode"
	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

func identityFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// GET /user/
func GetUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		user, err := s.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

type UpdateUserInput struct {
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Phone     string         `json:"phone"`
	Address   models.Address `json:"address"`
}

// PUT /user/
func UpdateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		user, err := s.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.FirstName != "" {
			user.FirstName = input.FirstName
		}
		if input.LastName != "" {
			user.LastName = input.LastName
		}
		if input.Phone != "" {
			user.Phone = input.Phone
		}
		if input.Address != (models.Address{}) {
			user.Address = input.Address
		}

		if err := s.UpdateUser(c.Request.Context(), user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /postcode/:postcode does address autofill for the checkout form. Unknown
// postcodes are a negative result, not an error.
func LookupPostcode(geo *geocode.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := geo.Lookup(c.Request.Context(), c.Param("postcode"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Postcode lookup failed, try again"})
			return
		}
		if result == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Postcode not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
