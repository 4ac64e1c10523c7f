package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

// generateOrderRef yields a unique, sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// CreateOrderFromCart turns the user's cart into an order in one transaction:
// stock is checked and deducted per line, the order and its items are written,
// and the cart is cleared. The caller fills in pricing and promo fields.
func (s *Store) CreateOrderFromCart(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", order.UserID).First(&cart).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return errors.New("cart is empty")
		}

		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("insufficient stock for %s", item.ProductName)
			}
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:         item.ProductID,
				ProductName:       item.ProductName,
				ProductImage:      item.ProductImage,
				UnitPrice:         item.UnitPrice,
				OriginalUnitPrice: item.OriginalUnitPrice,
				Size:              item.Size,
				Color:             item.Color,
				Quantity:          item.Quantity,
			})
		}

		order.OrderRef = generateOrderRef()
		order.CreatedAt = time.Now()
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
}

// GetOrderByRef returns nil when no order matches the reference.
func (s *Store) GetOrderByRef(ctx context.Context, ref string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Where("order_ref = ?", ref).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus persists the new status and returns the updated order.
func (s *Store) UpdateOrderStatus(ctx context.Context, ref string, status models.OrderStatus) (*models.Order, error) {
	if err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_ref = ?", ref).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.GetOrderByRef(ctx, ref)
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, ref string, status models.PaymentStatus) (*models.Order, error) {
	if err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_ref = ?", ref).
		Update("payment_status", status).Error; err != nil {
		return nil, err
	}
	return s.GetOrderByRef(ctx, ref)
}
