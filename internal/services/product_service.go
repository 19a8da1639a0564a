// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/models"
	"github.com/vastra/admin-backend/internal/utils"
)

// ProductService manages the product catalog. Image handling is delegated to
// ImageService; deleting a product runs the fail-closed asset cleanup before
// the product row goes away.
type ProductService struct {
	db     *gorm.DB
	images *ImageService
	cfg    *config.Config
}

func NewProductService(db *gorm.DB, images *ImageService, cfg *config.Config) *ProductService {
	return &ProductService{
		db:     db,
		images: images,
		cfg:    cfg,
	}
}

// SaveProductRequest carries the writable product fields. Prices arrive as
// strings, matching the form encoding, and are parsed on save. The discount
// is derived, never accepted from the client.
type SaveProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	SKU         string   `json:"sku" validate:"omitempty,max=100"`
	ActualPrice string   `json:"actual_price" validate:"required,price_string"`
	SellPrice   string   `json:"sell_price" validate:"required,price_string"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=Men Women Unisex Kids"`
	ProductType string   `json:"product_type"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	ReleaseDate string   `json:"release_date"`
	Status      string   `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Trending    bool     `json:"trending"`
	TopBrand    bool     `json:"top_brand"`
}

func (s *ProductService) ListProducts(ctx context.Context, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ? OR brand ILIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	query = utils.ApplySort(query, params, []string{"name", "brand", "sell_price", "status", "created_at"})
	if err := utils.ApplyPagination(query, params).
		Preload("Images").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	result := utils.CreatePaginationResult(products, total, params)
	return &result, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		Preload("Images").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req SaveProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Colors:      models.StringList(req.Colors),
		Sizes:       models.StringList(req.Sizes),
		Brand:       req.Brand,
		Category:    req.Category,
		Gender:      req.Gender,
		ProductType: req.ProductType,
		Description: req.Description,
		Details:     req.Details,
		ReleaseDate: req.ReleaseDate,
		Status:      models.EntityStatus(defaultStatus(req.Status)),
		Trending:    req.Trending,
		TopBrand:    req.TopBrand,
		Slug:        utils.Slugify(req.Name),
	}
	product.ActualPrice, product.SellPrice, product.Discount = resolvePrices(req.ActualPrice, req.SellPrice)

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req SaveProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	actual, sell, discount := resolvePrices(req.ActualPrice, req.SellPrice)
	updates := map[string]interface{}{
		"name":         req.Name,
		"sku":          req.SKU,
		"actual_price": actual,
		"sell_price":   sell,
		"discount":     discount,
		"colors":       models.StringList(req.Colors),
		"sizes":        models.StringList(req.Sizes),
		"brand":        req.Brand,
		"category":     req.Category,
		"gender":       req.Gender,
		"product_type": req.ProductType,
		"description":  req.Description,
		"details":      req.Details,
		"release_date": req.ReleaseDate,
		"status":       defaultStatus(req.Status),
		"trending":     req.Trending,
		"top_brand":    req.TopBrand,
		"slug":         utils.Slugify(req.Name),
	}

	if err := s.db.WithContext(ctx).Model(product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct clears the product's storage prefix and image rows first and
// deletes the product row only when that cleanup fully succeeded.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.DeleteProductAssets(ctx, product.ID); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// resolvePrices parses the price strings and derives the stored discount.
// An empty discount string means no valid discount; the column stays zero.
func resolvePrices(actualPrice, sellPrice string) (float64, float64, float64) {
	actual := priceValue(actualPrice)
	sell := priceValue(sellPrice)

	var discount float64
	if formatted := Discount(actualPrice, sellPrice); formatted != "" {
		discount, _ = strconv.ParseFloat(formatted, 64)
	}
	return actual, sell, discount
}
