package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

// GetPromoByCode matches case-insensitively; nil when no such code.
func (s *Store) GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var p models.PromoCode
	err := s.db.WithContext(ctx).
		Where("UPPER(code) = ?", strings.ToUpper(code)).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPromoCodes(ctx context.Context) ([]models.PromoCode, error) {
	var promos []models.PromoCode
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

func (s *Store) CreatePromoCode(ctx context.Context, p *models.PromoCode) error {
	p.Code = strings.ToUpper(p.Code)
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) UpdatePromoCode(ctx context.Context, p *models.PromoCode) error {
	p.Code = strings.ToUpper(p.Code)
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *Store) DeletePromoCode(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.PromoCode{}, "id = ?", id).Error
}
