// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var filters services.ProductFilters

	if featuredStr := c.Query("is_featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			filters.IsFeatured = &featured
		}
	}

	if categoryStr := c.Query("category_id"); categoryStr != "" {
		if categoryID, err := uuid.Parse(categoryStr); err == nil {
			filters.CategoryID = &categoryID
		}
	}

	if tagsStr := c.Query("tag_ids"); tagsStr != "" {
		for _, raw := range strings.Split(tagsStr, ",") {
			if tagID, err := uuid.Parse(strings.TrimSpace(raw)); err == nil {
				filters.TagIDs = append(filters.TagIDs, tagID)
			}
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params, filters)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /products/:param (UUID, slug or title)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("param"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /products/tag/:tag
func (h *ProductHandler) GetProductsByTag(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, err := h.productService.GetProductsByTag(c.Request.Context(), c.Param("tag"), params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// PATCH /products/:param
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("param"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /products/:param
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("param")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
