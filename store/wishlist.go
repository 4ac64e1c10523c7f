package store

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

// ListWishlist returns the product IDs on the user's wishlist, oldest first.
func (s *Store) ListWishlist(ctx context.Context, userID string) ([]uint, error) {
	var entries []models.WishlistEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	return ids, nil
}

// AddWishlist is idempotent: adding a product already on the wishlist is a
// no-op, backed by the composite unique index.
func (s *Store) AddWishlist(ctx context.Context, userID string, productID uint) error {
	entry := models.WishlistEntry{UserID: userID, ProductID: productID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
}

// RemoveWishlist is a no-op when the product is not on the wishlist.
func (s *Store) RemoveWishlist(ctx context.Context, userID string, productID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistEntry{}).Error
}
