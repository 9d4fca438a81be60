// internal/services/cart_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	files    FileURLResolver
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, files FileURLResolver) *CartService {
	return &CartService{carts: carts, products: products, files: files}
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	cart, err := s.carts.GetOrCreateOpen(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	response := NewCartResponse(cart, s.files)
	return &response, nil
}

// AddItem merges quantities when the product is already in the cart instead
// of creating a second line.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *AddCartItemRequest) (*CartResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperrors.CartProductNotFound()
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, apperrors.FromDB(err, apperrors.CartProductNotFound())
	}

	cart, err := s.carts.GetOrCreateOpen(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	if existing := cart.FindItemByProduct(productID); existing != nil {
		existing.Quantity += req.Quantity
		if err := s.carts.SaveItem(ctx, existing); err != nil {
			return nil, apperrors.FromDB(err, nil)
		}
	} else {
		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  req.Quantity,
		}
		if err := s.carts.SaveItem(ctx, &item); err != nil {
			return nil, apperrors.FromDB(err, nil)
		}
	}

	if err := s.carts.Touch(ctx, cart.ID); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *UpdateCartItemRequest) (*CartResponse, error) {
	cart, err := s.carts.GetOrCreateOpen(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		return nil, apperrors.CartItemNotFound()
	}

	item.Quantity = req.Quantity
	if err := s.carts.SaveItem(ctx, item); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if err := s.carts.Touch(ctx, cart.ID); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	cart, err := s.carts.GetOrCreateOpen(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	removed, err := s.carts.DeleteItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if !removed {
		return nil, apperrors.CartItemNotFound()
	}

	if err := s.carts.Touch(ctx, cart.ID); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	cart, err := s.carts.GetOrCreateOpen(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if err := s.carts.Touch(ctx, cart.ID); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return s.GetCart(ctx, userID)
}
