// internal/services/mocks_test.go
package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
)

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) GetOrCreateOpen(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepository) SaveItem(ctx context.Context, item *models.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, cartID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return m.Called(ctx, cartID).Error(0)
}

func (m *mockCartRepository) Touch(ctx context.Context, cartID uuid.UUID) error {
	return m.Called(ctx, cartID).Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) CreateFromCart(ctx context.Context, order *models.Order, cartID uuid.UUID) error {
	return m.Called(ctx, order, cartID).Error(0)
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	var orders []models.Order
	if v := args.Get(0); v != nil {
		orders = v.([]models.Order)
	}
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepository) FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, userID, id)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAddressRepository struct {
	mock.Mock
}

func (m *mockAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	args := m.Called(ctx, userID)
	var addresses []models.Address
	if v := args.Get(0); v != nil {
		addresses = v.([]models.Address)
	}
	return addresses, args.Error(1)
}

func (m *mockAddressRepository) FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.Address, error) {
	args := m.Called(ctx, userID, id)
	if address := args.Get(0); address != nil {
		return address.(*models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressRepository) Create(ctx context.Context, address *models.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepository) Update(ctx context.Context, address *models.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepository) Delete(ctx context.Context, address *models.Address) error {
	return m.Called(ctx, address).Error(0)
}

type mockBillingRepository struct {
	mock.Mock
}

func (m *mockBillingRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.BillingProfile, error) {
	args := m.Called(ctx, userID, limit, offset)
	var profiles []models.BillingProfile
	if v := args.Get(0); v != nil {
		profiles = v.([]models.BillingProfile)
	}
	return profiles, args.Error(1)
}

func (m *mockBillingRepository) FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.BillingProfile, error) {
	args := m.Called(ctx, userID, id)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.BillingProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillingRepository) FindDefault(ctx context.Context, userID uuid.UUID) (*models.BillingProfile, error) {
	args := m.Called(ctx, userID)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.BillingProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBillingRepository) Create(ctx context.Context, profile *models.BillingProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockBillingRepository) Update(ctx context.Context, profile *models.BillingProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockBillingRepository) Delete(ctx context.Context, profile *models.BillingProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	var users []models.User
	if v := args.Get(0); v != nil {
		users = v.([]models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) SoftDelete(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Search(ctx context.Context, query repository.ProductQuery) ([]models.Product, int64, error) {
	args := m.Called(ctx, query)
	var products []models.Product
	if v := args.Get(0); v != nil {
		products = v.([]models.Product)
	}
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if product := args.Get(0); product != nil {
		return product.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) FindByIDOrSlug(ctx context.Context, param string) (*models.Product, error) {
	args := m.Called(ctx, param)
	if product := args.Get(0); product != nil {
		return product.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) FindByTag(ctx context.Context, tag string, query repository.ProductQuery) ([]models.Product, error) {
	args := m.Called(ctx, tag, query)
	var products []models.Product
	if v := args.Get(0); v != nil {
		products = v.([]models.Product)
	}
	return products, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *models.Product, replaceImages bool) error {
	return m.Called(ctx, product, replaceImages).Error(0)
}

func (m *mockProductRepository) SoftDelete(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	var categories []models.Category
	if v := args.Get(0); v != nil {
		categories = v.([]models.Category)
	}
	return categories, args.Error(1)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) CountFeatured(ctx context.Context, excludeID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) Save(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	var tags []models.Tag
	if v := args.Get(0); v != nil {
		tags = v.([]models.Tag)
	}
	return tags, args.Error(1)
}

func (m *mockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if tag := args.Get(0); tag != nil {
		return tag.(*models.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	args := m.Called(ctx, ids)
	var tags []models.Tag
	if v := args.Get(0); v != nil {
		tags = v.([]models.Tag)
	}
	return tags, args.Error(1)
}

func (m *mockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *mockTagRepository) Save(ctx context.Context, tag *models.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *mockTagRepository) Delete(ctx context.Context, tag *models.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

type mockPromotionRepository struct {
	mock.Mock
}

func (m *mockPromotionRepository) FindAll(ctx context.Context) ([]models.Promotion, error) {
	args := m.Called(ctx)
	var promotions []models.Promotion
	if v := args.Get(0); v != nil {
		promotions = v.([]models.Promotion)
	}
	return promotions, args.Error(1)
}

func (m *mockPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	args := m.Called(ctx, id)
	if promotion := args.Get(0); promotion != nil {
		return promotion.(*models.Promotion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPromotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *mockPromotionRepository) Save(ctx context.Context, promotion *models.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *mockPromotionRepository) Delete(ctx context.Context, promotion *models.Promotion) error {
	return m.Called(ctx, promotion).Error(0)
}

func (m *mockPromotionRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// fakeFiles resolves URLs without any storage behind it.
type fakeFiles struct{}

func (fakeFiles) PublicURL(fileType, fileName string) string {
	if fileName == "" {
		return ""
	}
	return "http://files.test/" + fileType + "/" + fileName
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent []string
	err  error
	done chan struct{}
}

func newFakeMailer(err error) *fakeMailer {
	return &fakeMailer{err: err, done: make(chan struct{}, 8)}
}

func (m *fakeMailer) SendOrderConfirmation(to, fullName string, order *models.Order) error {
	m.sent = append(m.sent, order.OrderNumber)
	m.done <- struct{}{}
	return m.err
}
