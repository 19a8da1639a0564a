// internal/handlers/product.go
package handlers

import (
	"context"
	"mime/multipart"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/ingest"
	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

type ProductHandler struct {
	products *services.ProductService
	images   *services.ImageService
	cfg      *config.Config
}

func NewProductHandler(products *services.ProductService, images *services.ImageService, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		products: products,
		images:   images,
		cfg:      cfg,
	}
}

// GET /v1/products
func (h *ProductHandler) List(c *gin.Context) {
	result, err := h.products.ListProducts(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.PaginatedResponse(c, *result)
}

// GET /v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	product, err := h.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, product)
}

// PUT /v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req services.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	product, err := h.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// DELETE /v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// UploadImages accepts a multipart batch for one product. Each "files" part
// may carry a matching "paths" value with its drop-relative path; when paths
// are present, the batch is treated as a directory drop and filtered down to
// image files before anything is uploaded.
// POST /v1/products/:id/images
func (h *ProductHandler) UploadImages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", nil)
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		utils.BadRequestResponse(c, "No files provided", nil)
		return
	}

	paths := form.Value["paths"]
	keep, skipped := selectUploadable(headers, paths)

	if len(keep) == 0 {
		utils.BadRequestResponse(c, "No image files in the batch", gin.H{"skipped": skipped})
		return
	}

	files := make([]services.UploadFile, 0, len(keep))
	for _, header := range keep {
		file, err := readUploadFile(header, h.cfg.Upload.MaxFileSize)
		if err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		files = append(files, *file)
	}

	outcomes, rows, err := h.images.UploadProductImages(c.Request.Context(), id, files)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"outcomes": outcomes,
		"images":   rows,
		"skipped":  skipped,
	})
}

// GET /v1/products/:id/images
func (h *ProductHandler) ListImages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	images, err := h.images.ListProductImages(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, images)
}

// AssignImageColor tags or untags an image with a color variant.
// PATCH /v1/product-images/:imageId/color
func (h *ProductHandler) AssignImageColor(c *gin.Context) {
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	var req struct {
		ColorID *uuid.UUID `json:"color_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	if err := h.images.AssignImageColor(c.Request.Context(), imageID, req.ColorID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"updated": true})
}

// DELETE /v1/product-images/:imageId
func (h *ProductHandler) DeleteImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}
	if err := h.images.DeleteImage(c.Request.Context(), imageID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// selectUploadable filters a batch down to image files. With per-file paths
// the batch is expanded as a dropped tree, so nested directories are walked
// and non-images at any depth fall out; without paths each file name is
// checked directly. The second return lists what was filtered out.
func selectUploadable(headers []*multipart.FileHeader, paths []string) ([]*multipart.FileHeader, []string) {
	var keep []*multipart.FileHeader
	var skipped []string

	if len(paths) != len(headers) {
		for _, header := range headers {
			if ingest.IsImageFile(header.Filename) {
				keep = append(keep, header)
			} else {
				skipped = append(skipped, header.Filename)
			}
		}
		return keep, skipped
	}

	roots, fsys := ingest.NewTree(paths)
	entries, err := ingest.CollectImages(context.Background(), fsys, roots)
	if err != nil {
		return nil, nil
	}

	accepted := make(map[string]bool, len(entries))
	for _, entry := range entries {
		accepted[entry.Path] = true
	}
	for i, header := range headers {
		if accepted[strings.Trim(path.Clean(paths[i]), "/")] {
			keep = append(keep, header)
		} else {
			skipped = append(skipped, paths[i])
		}
	}
	return keep, skipped
}
