// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

const orderNumberAttempts = 5

type OrderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	addresses repository.AddressRepository
	billing   repository.BillingProfileRepository
	users     repository.UserRepository
	files     FileURLResolver
	mailer    Mailer
}

type CheckoutRequest struct {
	ShippingAddressID string `json:"shipping_address_id" validate:"required,uuid"`
	BillingProfileID  string `json:"billing_profile_id,omitempty" validate:"omitempty,uuid"`
	Notes             string `json:"notes,omitempty" validate:"max=200"`
}

func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	addresses repository.AddressRepository,
	billing repository.BillingProfileRepository,
	users repository.UserRepository,
	files FileURLResolver,
	mailer Mailer,
) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		addresses: addresses,
		billing:   billing,
		users:     users,
		files:     files,
		mailer:    mailer,
	}
}

// Checkout converts the user's open cart into a pending order. Items capture
// quantity, the product price at this moment and a full product snapshot; the
// cart flip and the order insert commit in one transaction.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, req *CheckoutRequest) (*OrderResponse, error) {
	cart, err := s.carts.GetOrCreateOpen(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.EmptyCart()
	}

	shippingID, err := uuid.Parse(req.ShippingAddressID)
	if err != nil {
		return nil, apperrors.ShippingAddressNotFound()
	}
	address, err := s.addresses.FindOwned(ctx, userID, shippingID)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.ShippingAddressNotFound())
	}

	profile, err := s.resolveBillingProfile(ctx, userID, req.BillingProfileID)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	total := 0.0
	for i := range cart.Items {
		cartItem := &cart.Items[i]
		productID := cartItem.ProductID
		items = append(items, models.OrderItem{
			ProductID:       &productID,
			Quantity:        cartItem.Quantity,
			UnitPrice:       cartItem.Product.Price,
			ProductSnapshot: cartItem.Product.Snapshot(),
		})
		total += float64(cartItem.Quantity) * cartItem.Product.Price
	}

	number, err := s.generateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:       number,
		UserID:            userID,
		Status:            models.OrderStatusPending,
		Total:             total,
		Notes:             req.Notes,
		ShippingAddressID: &address.ID,
		ShippingSnapshot:  address.Snapshot(),
		Items:             items,
	}
	if profile != nil {
		order.BillingProfileID = &profile.ID
		order.BillingSnapshot = profile.Snapshot()
	}

	if err := s.orders.CreateFromCart(ctx, order, cart.ID); err != nil {
		// The cart was already checked out by a concurrent request.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.EmptyCart()
		}
		return nil, apperrors.FromDB(err, nil)
	}

	go s.sendConfirmationEmail(userID, order)

	response := NewOrderResponse(order, s.files)
	return &response, nil
}

func (s *OrderService) resolveBillingProfile(ctx context.Context, userID uuid.UUID, profileID string) (*models.BillingProfile, error) {
	if profileID != "" {
		id, err := uuid.Parse(profileID)
		if err != nil {
			return nil, apperrors.BillingProfileNotFound()
		}
		profile, err := s.billing.FindOwned(ctx, userID, id)
		if err != nil {
			return nil, apperrors.FromDB(err, apperrors.BillingProfileNotFound())
		}
		return profile, nil
	}

	profile, err := s.billing.FindDefault(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return profile, nil
}

// generateOrderNumber draws ORD-YYYYMMDD-RRRR candidates until one is free.
// The unique index on order_number backstops the window between the check
// and the insert.
func (s *OrderService) generateOrderNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number := fmt.Sprintf("ORD-%s-%04d", time.Now().Format("20060102"), 1000+rand.IntN(9000))

		exists, err := s.orders.NumberExists(ctx, number)
		if err != nil {
			return "", apperrors.FromDB(err, nil)
		}
		if !exists {
			return number, nil
		}
	}
	return "", apperrors.OrderNumberGenerationFailed()
}

func (s *OrderService) sendConfirmationEmail(userID uuid.UUID, order *models.Order) {
	user, err := s.users.FindByID(context.Background(), userID)
	if err != nil {
		logrus.WithError(err).WithField("order_number", order.OrderNumber).
			Error("Failed to load user for order confirmation email")
		return
	}

	if err := s.mailer.SendOrderConfirmation(user.Email, user.FullName, order); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_number": order.OrderNumber,
			"email":        user.Email,
		}).Error("Failed to send order confirmation email")
	}
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	orders, total, err := s.orders.FindByUser(ctx, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, NewOrderResponse(&orders[i], s.files))
	}

	result := utils.CreatePaginationResult(responses, total, params)
	return &result, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.FindOwned(ctx, userID, orderID)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.OrderNotFound())
	}

	response := NewOrderResponse(order, s.files)
	return &response, nil
}
