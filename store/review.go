package store

import (
	"context"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

func (s *Store) CreateReview(ctx context.Context, r *models.Review) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *Store) ListProductReviews(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// RatingStats aggregates count and average rating per product across the
// given IDs. Products without reviews are simply absent from the map.
func (s *Store) RatingStats(ctx context.Context, productIDs []uint) (map[uint]models.RatingStats, error) {
	stats := make(map[uint]models.RatingStats)
	if len(productIDs) == 0 {
		return stats, nil
	}

	var rows []struct {
		ProductID uint
		Count     int64
		Average   float64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("product_id, COUNT(*) as count, AVG(rating) as average").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.ProductID] = models.RatingStats{Count: row.Count, Average: row.Average}
	}
	return stats, nil
}
