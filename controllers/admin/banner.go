package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/store"
)

// GET /banners lists the active slots in display order.
func GetBanners(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := s.ListActiveBanners(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

type BannerInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" binding:"required"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// POST /admin/banners
func CreateBanner(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		banner := models.Banner{
			Title:    input.Title,
			Subtitle: input.Subtitle,
			Image:    input.Image,
			LinkURL:  input.LinkURL,
			Position: input.Position,
			Active:   input.Active,
		}
		if err := s.CreateBanner(c.Request.Context(), &banner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
			return
		}
		c.JSON(http.StatusCreated, banner)
	}
}

// DELETE /admin/banners/:id
func DeleteBanner(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
			return
		}
		if err := s.DeleteBanner(c.Request.Context(), uint(id)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
