// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFromQuery(query string) PaginationParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFromQuery("")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "title", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, 0, params.Offset())
}

func TestGetPaginationParamsClampsInvalidValues(t *testing.T) {
	params := paramsFromQuery("page=-3&limit=5000&order=sideways")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "asc", params.Order)
}

func TestGetPaginationParamsOffset(t *testing.T) {
	params := paramsFromQuery("page=3&limit=20&order=desc&sort=price")

	assert.Equal(t, 40, params.Offset())
	assert.Equal(t, "desc", params.Order)
	assert.Equal(t, "price", params.Sort)
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}

	result := CreatePaginationResult([]string{"a"}, 25, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}
