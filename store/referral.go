package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

// GetReferralByCode matches case-insensitively; nil when no such code.
func (s *Store) GetReferralByCode(ctx context.Context, code string) (*models.Referral, error) {
	var r models.Referral
	err := s.db.WithContext(ctx).
		Where("UPPER(code) = ?", strings.ToUpper(code)).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// IncrementClicks bumps the click counter. Read-modify-write without a
// version token: concurrent increments on the same code can lose updates.
func (s *Store) IncrementClicks(ctx context.Context, code string) error {
	r, err := s.GetReferralByCode(ctx, code)
	if err != nil || r == nil {
		return err
	}
	r.TotalClicks++
	return s.db.WithContext(ctx).Save(r).Error
}

// RecordConversion credits an order to the referral: one conversion, the order
// total as revenue, and commission at the record's rate. Same racy
// read-modify-write as IncrementClicks.
func (s *Store) RecordConversion(ctx context.Context, code string, orderTotal float64) error {
	r, err := s.GetReferralByCode(ctx, code)
	if err != nil || r == nil {
		return err
	}
	r.TotalConversions++
	r.TotalRevenue += orderTotal
	r.TotalCommission += orderTotal * r.CommissionRate / 100
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *Store) ListReferrals(ctx context.Context) ([]models.Referral, error) {
	var referrals []models.Referral
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&referrals).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}

func (s *Store) CreateReferral(ctx context.Context, r *models.Referral) error {
	r.Code = strings.ToUpper(r.Code)
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *Store) UpdateReferral(ctx context.Context, r *models.Referral) error {
	r.Code = strings.ToUpper(r.Code)
	return s.db.WithContext(ctx).Save(r).Error
}
