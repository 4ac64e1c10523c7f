package store

import (
	"context"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

func (s *Store) ListActiveBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (s *Store) CreateBanner(ctx context.Context, b *models.Banner) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *Store) DeleteBanner(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id).Error
}
