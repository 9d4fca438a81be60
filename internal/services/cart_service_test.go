// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
)

func newCartService() (*CartService, *mockCartRepository, *mockProductRepository) {
	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	return NewCartService(carts, products, fakeFiles{}), carts, products
}

func testCart(userID uuid.UUID, items ...models.CartItem) *models.Cart {
	return &models.Cart{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Items:     items,
	}
}

func TestAddItemCreatesLine(t *testing.T) {
	service, carts, products := newCartService()
	userID := uuid.New()

	product := &models.Product{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: models.BaseModel{ID: uuid.New()}},
		Title:           "Pan de molde",
		Price:           1000,
	}
	cart := testCart(userID)

	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	carts.On("GetOrCreateOpen", mock.Anything, userID).Return(cart, nil)
	carts.On("SaveItem", mock.Anything, mock.MatchedBy(func(item *models.CartItem) bool {
		return item.ProductID == product.ID && item.Quantity == 3 && item.CartID == cart.ID
	})).Return(nil)
	carts.On("Touch", mock.Anything, cart.ID).Return(nil)

	_, err := service.AddItem(context.Background(), userID, &AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})

	require.NoError(t, err)
	carts.AssertExpectations(t)
}

func TestAddItemMergesQuantities(t *testing.T) {
	service, carts, products := newCartService()
	userID := uuid.New()

	product := &models.Product{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: models.BaseModel{ID: uuid.New()}},
		Title:           "Pan de molde",
		Price:           1000,
	}
	cart := testCart(userID, models.CartItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProductID: product.ID,
		Quantity:  2,
		Product:   *product,
	})
	cart.Items[0].CartID = cart.ID

	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	carts.On("GetOrCreateOpen", mock.Anything, userID).Return(cart, nil)
	carts.On("SaveItem", mock.Anything, mock.MatchedBy(func(item *models.CartItem) bool {
		// The existing line absorbs the new quantity.
		return item.ID == cart.Items[0].ID && item.Quantity == 5
	})).Return(nil)
	carts.On("Touch", mock.Anything, cart.ID).Return(nil)

	response, err := service.AddItem(context.Background(), userID, &AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})

	require.NoError(t, err)
	require.Len(t, response.Items, 1)
	assert.Equal(t, 5, response.Items[0].Quantity)
	assert.Equal(t, 5000.0, response.Total)
}

func TestAddItemUnknownProduct(t *testing.T) {
	service, carts, products := newCartService()
	userID := uuid.New()
	productID := uuid.New()

	products.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.AddItem(context.Background(), userID, &AddCartItemRequest{
		ProductID: productID.String(),
		Quantity:  1,
	})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "CART_PRODUCT_NOT_FOUND", appErr.Code)
	carts.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
}

func TestUpdateItemNotInCart(t *testing.T) {
	service, carts, _ := newCartService()
	userID := uuid.New()
	cart := testCart(userID)

	carts.On("GetOrCreateOpen", mock.Anything, userID).Return(cart, nil)

	_, err := service.UpdateItem(context.Background(), userID, uuid.New(), &UpdateCartItemRequest{Quantity: 2})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", appErr.Code)
}

func TestRemoveItemNotInCart(t *testing.T) {
	service, carts, _ := newCartService()
	userID := uuid.New()
	cart := testCart(userID)
	itemID := uuid.New()

	carts.On("GetOrCreateOpen", mock.Anything, userID).Return(cart, nil)
	carts.On("DeleteItem", mock.Anything, cart.ID, itemID).Return(false, nil)

	_, err := service.RemoveItem(context.Background(), userID, itemID)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", appErr.Code)
	carts.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything)
}

func TestClearCart(t *testing.T) {
	service, carts, _ := newCartService()
	userID := uuid.New()
	cart := testCart(userID)

	carts.On("GetOrCreateOpen", mock.Anything, userID).Return(cart, nil)
	carts.On("ClearItems", mock.Anything, cart.ID).Return(nil)
	carts.On("Touch", mock.Anything, cart.ID).Return(nil)

	response, err := service.ClearCart(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, response.Items)
	assert.Equal(t, 0.0, response.Total)
	carts.AssertExpectations(t)
}
