// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

// CatalogHandler exposes the brand, category, color and size endpoints.
// Brand and category writes arrive as multipart forms because they may carry
// image files; colors and sizes are plain JSON.
type CatalogHandler struct {
	catalog *services.CatalogService
	cfg     *config.Config
}

func NewCatalogHandler(catalog *services.CatalogService, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, cfg: cfg}
}

func (h *CatalogHandler) brandRequest(c *gin.Context) (*services.SaveBrandRequest, bool) {
	image, err := optionalFormFile(c, "image", h.cfg.Upload.MaxFileSize)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return nil, false
	}
	background, err := optionalFormFile(c, "background_image", h.cfg.Upload.MaxFileSize)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return nil, false
	}

	return &services.SaveBrandRequest{
		Name:            c.PostForm("name"),
		Status:          c.PostForm("status"),
		Image:           image,
		BackgroundImage: background,
	}, true
}

// GET /v1/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	result, err := h.catalog.ListBrands(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, *result)
}

// GET /v1/brands/:id
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	brand, err := h.catalog.GetBrand(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, brand)
}

// POST /v1/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	req, ok := h.brandRequest(c)
	if !ok {
		return
	}
	brand, err := h.catalog.CreateBrand(c.Request.Context(), *req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, brand)
}

// PUT /v1/brands/:id
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := h.brandRequest(c)
	if !ok {
		return
	}
	brand, err := h.catalog.UpdateBrand(c.Request.Context(), id, *req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, brand)
}

// DELETE /v1/brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteBrand(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// DELETE /v1/brands/:id/background-image
func (h *CatalogHandler) DetachBrandBackground(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DetachBrandBackground(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"detached": true})
}

func (h *CatalogHandler) categoryRequest(c *gin.Context) (*services.SaveCategoryRequest, bool) {
	image, err := optionalFormFile(c, "image", h.cfg.Upload.MaxFileSize)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return nil, false
	}
	background, err := optionalFormFile(c, "background_image", h.cfg.Upload.MaxFileSize)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return nil, false
	}

	return &services.SaveCategoryRequest{
		Name:            c.PostForm("name"),
		Status:          c.PostForm("status"),
		Image:           image,
		BackgroundImage: background,
	}, true
}

// GET /v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	result, err := h.catalog.ListCategories(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, *result)
}

// GET /v1/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, category)
}

// POST /v1/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	req, ok := h.categoryRequest(c)
	if !ok {
		return
	}
	category, err := h.catalog.CreateCategory(c.Request.Context(), *req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, category)
}

// PUT /v1/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := h.categoryRequest(c)
	if !ok {
		return
	}
	category, err := h.catalog.UpdateCategory(c.Request.Context(), id, *req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, category)
}

// DELETE /v1/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// DELETE /v1/categories/:id/background-image
func (h *CatalogHandler) DetachCategoryBackground(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DetachCategoryBackground(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"detached": true})
}

// GET /v1/colors
func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.catalog.ListColors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, colors)
}

// POST /v1/colors
func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var req services.SaveColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	color, err := h.catalog.CreateColor(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, color)
}

// PUT /v1/colors/:id
func (h *CatalogHandler) UpdateColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.SaveColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	color, err := h.catalog.UpdateColor(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, color)
}

// DELETE /v1/colors/:id
func (h *CatalogHandler) DeleteColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteColor(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// GET /v1/sizes
func (h *CatalogHandler) ListSizes(c *gin.Context) {
	sizes, err := h.catalog.ListSizes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, sizes)
}

// POST /v1/sizes
func (h *CatalogHandler) CreateSize(c *gin.Context) {
	var req services.SaveSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	size, err := h.catalog.CreateSize(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, size)
}

// PUT /v1/sizes/:id
func (h *CatalogHandler) UpdateSize(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.SaveSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	size, err := h.catalog.UpdateSize(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, size)
}

// DELETE /v1/sizes/:id
func (h *CatalogHandler) DeleteSize(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteSize(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}
