package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

// GetCart returns the user's cart with its items, creating the cart row if it
// does not exist yet.
func (s *Store) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpsertCartItem sets the quantity for the (product, size, color) line,
// creating it if absent. A quantity of zero or less removes the line instead:
// no line is ever persisted with quantity <= 0.
func (s *Store) UpsertCartItem(ctx context.Context, userID string, product *models.Product, size, color string, quantity int) (*models.CartItem, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		err := s.db.WithContext(ctx).
			Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?",
				cart.CartID, product.ID, size, color).
			Delete(&models.CartItem{}).Error
		return nil, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?",
			cart.CartID, product.ID, size, color).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:            cart.CartID,
			ProductID:         product.ID,
			ProductName:       product.Name,
			ProductSlug:       product.Slug,
			ProductImage:      product.Image,
			UnitPrice:         product.Price,
			OriginalUnitPrice: product.OriginalPrice,
			Size:              size,
			Color:             color,
			Quantity:          quantity,
			AddedAt:           time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.AddedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes one line; removing an absent line reports found=false.
func (s *Store) RemoveCartItem(ctx context.Context, userID string, productID uint, size, color string) (bool, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return false, err
	}
	res := s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?",
			cart.CartID, productID, size, color).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}
