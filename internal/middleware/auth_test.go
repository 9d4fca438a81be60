// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

func authTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.GET("/protected", chain...)
	return r
}

func issueToken(t *testing.T, roles []string) string {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	token, err := utils.GenerateJWT(uuid.New(), "ana@example.com", roles, 1)
	require.NoError(t, err)
	return token
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBadToken(t *testing.T) {
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	token := issueToken(t, []string{models.RoleUser})
	r := authTestRouter(AuthRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequiredRejectsPlainUser(t *testing.T) {
	token := issueToken(t, []string{models.RoleUser})
	r := authTestRouter(AuthRequired(), AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	token := issueToken(t, []string{models.RoleAdmin, models.RoleUser})
	r := authTestRouter(AuthRequired(), AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthWithoutHeader(t *testing.T) {
	r := authTestRouter(OptionalAuth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
