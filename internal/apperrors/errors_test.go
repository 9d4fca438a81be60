// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromDBNil(t *testing.T) {
	assert.Nil(t, FromDB(nil, OrderNotFound()))
}

func TestFromDBRecordNotFound(t *testing.T) {
	appErr := FromDB(gorm.ErrRecordNotFound, OrderNotFound())

	require.NotNil(t, appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.True(t, appErr.Expose)
}

func TestFromDBRecordNotFoundWithoutFallback(t *testing.T) {
	appErr := FromDB(gorm.ErrRecordNotFound, nil)

	require.NotNil(t, appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	assert.False(t, appErr.Expose)
}

func TestFromDBUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Detail: "Key (email)=(ana@example.com) already exists."}

	appErr := FromDB(fmt.Errorf("insert: %w", pgErr), nil)

	require.NotNil(t, appErr)
	assert.Equal(t, "UNIQUE_VIOLATION", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, pgErr.Detail, appErr.Message)
}

func TestFromDBPassesThroughCatalogErrors(t *testing.T) {
	appErr := FromDB(fmt.Errorf("checkout: %w", EmptyCart()), OrderNotFound())

	require.NotNil(t, appErr)
	assert.Equal(t, "ORDER_EMPTY_CART", appErr.Code)
}

func TestFromDBUnknownError(t *testing.T) {
	cause := errors.New("connection refused")

	appErr := FromDB(cause, OrderNotFound())

	require.NotNil(t, appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.False(t, appErr.Expose)
	assert.ErrorIs(t, appErr, cause)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("save: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestAs(t *testing.T) {
	appErr, ok := As(fmt.Errorf("wrapped: %w", ProductNotFound("pan")))
	require.True(t, ok)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("disk full")
	appErr := Internal(cause)

	assert.Contains(t, appErr.Error(), "disk full")
	assert.ErrorIs(t, appErr, cause)
}
