// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/models"
)

// The repository layer isolates every SQL concern behind one interface per
// aggregate. Implementations return raw storage errors (including
// gorm.ErrRecordNotFound); the service layer translates them into the
// domain error catalog.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	SoftDelete(ctx context.Context, user *models.User) error
}

type AddressRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.Address, error)

	// Create and Update enforce the single-default invariant atomically:
	// when the row is default, all other defaults of the same user are
	// cleared in the same transaction.
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error

	// Delete detaches the address from existing orders (their snapshots
	// keep them renderable) before removing the row.
	Delete(ctx context.Context, address *models.Address) error
}

type BillingProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.BillingProfile, error)
	FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.BillingProfile, error)

	// FindDefault returns (nil, nil) when the user has no default profile.
	FindDefault(ctx context.Context, userID uuid.UUID) (*models.BillingProfile, error)

	Create(ctx context.Context, profile *models.BillingProfile) error
	Update(ctx context.Context, profile *models.BillingProfile) error
	Delete(ctx context.Context, profile *models.BillingProfile) error
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CountFeatured(ctx context.Context, excludeID *uuid.UUID) (int64, error)
	Create(ctx context.Context, category *models.Category) error
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
}

type TagRepository interface {
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Save(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, tag *models.Tag) error
}

// ProductQuery carries the catalog listing filters. SortBy is validated
// against the allow list by the caller.
type ProductQuery struct {
	Limit      int
	Offset     int
	SortBy     string
	SortOrder  string
	Search     string
	IsFeatured *bool
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
}

type ProductRepository interface {
	Search(ctx context.Context, query ProductQuery) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// FindByIDOrSlug accepts a UUID, a slug, or a case-insensitive title.
	FindByIDOrSlug(ctx context.Context, param string) (*models.Product, error)
	FindByTag(ctx context.Context, tag string, query ProductQuery) ([]models.Product, error)

	// Create and Update write the product together with its images and tag
	// links in a single transaction.
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product, replaceImages bool) error
	SoftDelete(ctx context.Context, product *models.Product) error
}

type CartRepository interface {
	// GetOrCreateOpen returns the user's open cart, creating it lazily,
	// with items, products and product relations preloaded.
	GetOrCreateOpen(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	SaveItem(ctx context.Context, item *models.CartItem) error
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error)
	ClearItems(ctx context.Context, cartID uuid.UUID) error
	Touch(ctx context.Context, cartID uuid.UUID) error
}

type OrderRepository interface {
	NumberExists(ctx context.Context, number string) (bool, error)

	// CreateFromCart persists the order with its items and marks the source
	// cart checked out, all in one transaction. The cart flip is guarded by
	// is_checked_out = false: if another checkout already claimed the cart,
	// no rows are touched and gorm.ErrRecordNotFound is returned.
	CreateFromCart(ctx context.Context, order *models.Order, cartID uuid.UUID) error

	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, int64, error)
	FindOwned(ctx context.Context, userID, id uuid.UUID) (*models.Order, error)
}

type RecipeRepository interface {
	Search(ctx context.Context, query string, limit, offset int) ([]models.Recipe, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe, replaceIngredients bool) error
	Delete(ctx context.Context, recipe *models.Recipe) error
}

type IngredientRepository interface {
	FindAll(ctx context.Context) ([]models.Ingredient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Ingredient, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, ingredient *models.Ingredient) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindAll(ctx context.Context, limit, offset int) ([]models.Contact, int64, error)
}

type PromotionRepository interface {
	// FindAll lists banners by priority, highest first, newest breaking ties.
	FindAll(ctx context.Context) ([]models.Promotion, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error)
	Create(ctx context.Context, promotion *models.Promotion) error
	Save(ctx context.Context, promotion *models.Promotion) error
	Delete(ctx context.Context, promotion *models.Promotion) error
	DeleteAll(ctx context.Context) error
}
