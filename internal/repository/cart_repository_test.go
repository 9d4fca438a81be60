// internal/repository/cart_repository_test.go
package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintacc/sintacc-backend/internal/models"
)

func openCartCount(t *testing.T, repo *cartRepository, userID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, repo.db.Model(&models.Cart{}).
		Where("user_id = ? AND is_checked_out = ?", userID, false).
		Count(&count).Error)
	return count
}

func TestGetOrCreateOpenCreatesLazily(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db).(*cartRepository)
	ctx := context.Background()
	userID := uuid.New()

	cart, err := repo.GetOrCreateOpen(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.False(t, cart.IsCheckedOut)
	assert.Equal(t, int64(1), openCartCount(t, repo, userID))

	// A second access reuses the open cart instead of creating another.
	_, err = repo.GetOrCreateOpen(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), openCartCount(t, repo, userID))
}

func TestCreateOpenFallsBackToConcurrentWinner(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db).(*cartRepository)
	ctx := context.Background()
	userID := uuid.New()

	// Another request created the open cart between this request's lookup
	// and its insert; the insert hits the one-open-cart unique index.
	winner := &models.Cart{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID}
	require.NoError(t, db.Create(winner).Error)

	cart, err := repo.createOpen(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, cart.ID)
	assert.Equal(t, int64(1), openCartCount(t, repo, userID))
}

func TestCreateOpenIgnoresCheckedOutCarts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db).(*cartRepository)
	ctx := context.Background()
	userID := uuid.New()

	closed := &models.Cart{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, IsCheckedOut: true}
	require.NoError(t, db.Create(closed).Error)

	cart, err := repo.GetOrCreateOpen(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, closed.ID, cart.ID)
	assert.Equal(t, int64(1), openCartCount(t, repo, userID))
}
