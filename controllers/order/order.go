package orderControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nisharmultani/girlsecret-sub000/config"
	"github.com/nisharmultani/girlsecret-sub000/mailer"
	"github.com/nisharmultani/girlsecret-sub000/models"
	"github.com/nisharmultani/girlsecret-sub000/pricing"
	"github.com/nisharmultani/girlsecret-sub000/pubsub"
	"github.com/nisharmultani/girlsecret-sub000/referral"
)

// Records is the slice of the record store the order handlers need.
type Records interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	GetPromoByCode(ctx context.Context, code string) (*models.PromoCode, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateOrderFromCart(ctx context.Context, order *models.Order) error
	GetOrderByRef(ctx context.Context, ref string) (*models.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, ref string, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, ref string, status models.PaymentStatus) (*models.Order, error)
}

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod string         `json:"payment_method" binding:"required"` // "card" or "cod"; payment is simulated
	PromoCode     string         `json:"promo_code"`
	ShipTo        models.Address `json:"ship_to" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusReturned,
		models.OrderStatusCancelled:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func identityFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

// -------- Handlers --------

// POST /user/orders
// The checkout pipeline: price the cart, create the order, credit any active
// referral, email the confirmation. Email and referral crediting are
// best-effort; only pricing and order creation can fail the placement.
func PlaceOrderHandler(s Records, tracker *referral.Tracker, provider mailer.Provider, bus *pubsub.Bus, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()

		cart, err := s.GetCart(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		subtotal := pricing.Subtotal(cart.Items)

		var promo *models.PromoCode
		if req.PromoCode != "" {
			promo, err = s.GetPromoByCode(ctx, req.PromoCode)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate promo code"})
				return
			}
			if promo == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown promo code"})
				return
			}
			if err := pricing.ValidatePromo(promo, subtotal, time.Now()); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		totals := pricing.Quote(cart.Items, promo, cfg.FreeShippingThreshold, cfg.ShippingFee)

		order := models.Order{
			UserID:        userID,
			Subtotal:      totals.Subtotal,
			PromoDiscount: totals.PromoDiscount,
			ShippingCost:  totals.ShippingCost,
			TotalAmount:   totals.Total,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPaid, // simulated payment
			PaymentMethod: req.PaymentMethod,
			ShipTo:        req.ShipTo,
		}
		if promo != nil {
			order.PromoCode = promo.Code
		}

		// Stamp the attributed referral on the order row, but do not credit
		// the conversion yet: if creation fails the counters must stay
		// untouched, since nothing ever reconciles them downward.
		if rec, err := tracker.Active(ctx, userID); err != nil {
			log.Printf("orders: referral lookup failed: %v", err)
		} else if rec != nil {
			order.ReferralCode = rec.Code
		}

		if err := s.CreateOrderFromCart(ctx, &order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The order exists; conversion crediting is best-effort from here on.
		// A referral can both discount the order and credit the influencer.
		if _, err := tracker.Convert(ctx, userID, totals.Total); err != nil {
			log.Printf("orders: referral conversion failed: %v", err)
		}

		bus.Publish(pubsub.TopicCartChanged, userID)
		bus.Publish(pubsub.TopicOrderCreated, order)

		if user, err := s.GetUser(ctx, userID); err == nil && user != nil {
			order.User = *user
			if msg, err := mailer.OrderConfirmation(&order); err == nil {
				mailer.SendAsync(provider, msg)
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully",
			"order_ref": order.OrderRef,
			"order":     order,
		})
	}
}

// GET /user/orders
func GetUserOrdersHandler(s Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		orders, err := s.ListUserOrders(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:ref
func GetOrderByRefHandler(s Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identityFromContext(c)
		if !ok {
			return
		}
		order, err := s.GetOrderByRef(c.Request.Context(), c.Param("ref"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order == nil || order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(s Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:ref/status
// Persists the new status, emails the customer and broadcasts to the feed.
func UpdateOrderStatusHandler(s Records, provider mailer.Provider, bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.UpdateOrderStatus(c.Request.Context(), c.Param("ref"), newStatus)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		bus.Publish(pubsub.TopicOrderStatus, *order)

		if msg, err := mailer.OrderStatusUpdate(order); err == nil {
			mailer.SendAsync(provider, msg)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// PUT /admin/orders/:ref/payment
func UpdatePaymentStatusHandler(s Records, bus *pubsub.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.UpdatePaymentStatus(c.Request.Context(), c.Param("ref"), newStatus)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		bus.Publish(pubsub.TopicOrderStatus, *order)
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully", "order": order})
	}
}
