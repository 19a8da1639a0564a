// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/models"
	"github.com/vastra/admin-backend/internal/utils"
)

// CatalogService covers the four lookup tables behind products: brands,
// categories, colors and sizes. Brands and categories each carry an optional
// image and background image through ImageService.
type CatalogService struct {
	db     *gorm.DB
	images *ImageService
	cfg    *config.Config
}

func NewCatalogService(db *gorm.DB, images *ImageService, cfg *config.Config) *CatalogService {
	return &CatalogService{
		db:     db,
		images: images,
		cfg:    cfg,
	}
}

// SaveBrandRequest carries the writable brand fields. The image files are
// optional on create and, on update, mean "replace the current image".
type SaveBrandRequest struct {
	Name            string `validate:"required,min=1,max=100"`
	Status          string `validate:"omitempty,oneof=Active Inactive"`
	Image           *UploadFile
	BackgroundImage *UploadFile
}

func (s *CatalogService) ListBrands(ctx context.Context, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.WithContext(ctx).Model(&models.Brand{})
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}

	var brands []models.Brand
	query = utils.ApplySort(query, params, []string{"name", "status", "created_at"})
	if err := utils.ApplyPagination(query, params).Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}

	result := utils.CreatePaginationResult(brands, total, params)
	return &result, nil
}

func (s *CatalogService) GetBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &brand, nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, req SaveBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	brand := models.Brand{
		Name:   req.Name,
		Status: models.EntityStatus(defaultStatus(req.Status)),
		Slug:   utils.Slugify(req.Name),
	}

	if req.Image != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.BrandBucket, *req.Image, false)
		if err != nil {
			return nil, err
		}
		brand.ImageURL = url
	}
	if req.BackgroundImage != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.BrandBucket, *req.BackgroundImage, true)
		if err != nil {
			return nil, err
		}
		brand.BackgroundImageURL = url
	}

	if err := s.db.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, nil
}

// UpdateBrand replaces images two-phase: the new object is uploaded and
// persisted on the row before the old object is removed, so a failure on any
// step leaves the row pointing at an object that exists. Removal of the old
// object is best-effort.
func (s *CatalogService) UpdateBrand(ctx context.Context, id uuid.UUID, req SaveBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":   req.Name,
		"slug":   utils.Slugify(req.Name),
		"status": defaultStatus(req.Status),
	}

	oldImage, oldBackground := "", ""
	if req.Image != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.BrandBucket, *req.Image, false)
		if err != nil {
			return nil, err
		}
		oldImage = brand.ImageURL
		updates["image_url"] = url
	}
	if req.BackgroundImage != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.BrandBucket, *req.BackgroundImage, true)
		if err != nil {
			return nil, err
		}
		oldBackground = brand.BackgroundImageURL
		updates["background_image_url"] = url
	}

	if err := s.db.WithContext(ctx).Model(brand).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	s.cleanupReplaced(ctx, s.cfg.AWS.BrandBucket, oldImage, oldBackground)
	return s.GetBrand(ctx, id)
}

// DeleteBrand removes the brand's stored objects before the row; a storage
// failure aborts the deletion so no row disappears while its objects remain.
func (s *CatalogService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.RemoveByURL(ctx, s.cfg.AWS.BrandBucket, brand.ImageURL); err != nil {
		return fmt.Errorf("failed to remove brand image: %w", err)
	}
	if err := s.images.RemoveByURL(ctx, s.cfg.AWS.BrandBucket, brand.BackgroundImageURL); err != nil {
		return fmt.Errorf("failed to remove brand background image: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(brand).Error; err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

// DetachBrandBackground removes the background image object and clears the
// field, leaving the brand otherwise untouched.
func (s *CatalogService) DetachBrandBackground(ctx context.Context, id uuid.UUID) error {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return err
	}
	if brand.BackgroundImageURL == "" {
		return nil
	}

	if err := s.images.RemoveByURL(ctx, s.cfg.AWS.BrandBucket, brand.BackgroundImageURL); err != nil {
		return fmt.Errorf("failed to remove background image: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(brand).
		Update("background_image_url", "").Error; err != nil {
		return fmt.Errorf("failed to clear background image: %w", err)
	}
	return nil
}

// SaveCategoryRequest mirrors SaveBrandRequest for categories.
type SaveCategoryRequest struct {
	Name            string `validate:"required,min=1,max=100"`
	Status          string `validate:"omitempty,oneof=Active Inactive"`
	Image           *UploadFile
	BackgroundImage *UploadFile
}

func (s *CatalogService) ListCategories(ctx context.Context, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.WithContext(ctx).Model(&models.Category{})
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	var categories []models.Category
	query = utils.ApplySort(query, params, []string{"name", "status", "created_at"})
	if err := utils.ApplyPagination(query, params).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	result := utils.CreatePaginationResult(categories, total, params)
	return &result, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req SaveCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:   req.Name,
		Status: models.EntityStatus(defaultStatus(req.Status)),
		Slug:   utils.Slugify(req.Name),
	}

	if req.Image != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.CategoryBucket, *req.Image, false)
		if err != nil {
			return nil, err
		}
		category.ImageURL = url
	}
	if req.BackgroundImage != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.CategoryBucket, *req.BackgroundImage, true)
		if err != nil {
			return nil, err
		}
		category.BackgroundImageURL = url
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req SaveCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":   req.Name,
		"slug":   utils.Slugify(req.Name),
		"status": defaultStatus(req.Status),
	}

	oldImage, oldBackground := "", ""
	if req.Image != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.CategoryBucket, *req.Image, false)
		if err != nil {
			return nil, err
		}
		oldImage = category.ImageURL
		updates["image_url"] = url
	}
	if req.BackgroundImage != nil {
		url, err := s.images.UploadOwnerImage(ctx, s.cfg.AWS.CategoryBucket, *req.BackgroundImage, true)
		if err != nil {
			return nil, err
		}
		oldBackground = category.BackgroundImageURL
		updates["background_image_url"] = url
	}

	if err := s.db.WithContext(ctx).Model(category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.cleanupReplaced(ctx, s.cfg.AWS.CategoryBucket, oldImage, oldBackground)
	return s.GetCategory(ctx, id)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.RemoveByURL(ctx, s.cfg.AWS.CategoryBucket, category.ImageURL); err != nil {
		return fmt.Errorf("failed to remove category image: %w", err)
	}
	if err := s.images.RemoveByURL(ctx, s.cfg.AWS.CategoryBucket, category.BackgroundImageURL); err != nil {
		return fmt.Errorf("failed to remove category background image: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *CatalogService) DetachCategoryBackground(ctx context.Context, id uuid.UUID) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if category.BackgroundImageURL == "" {
		return nil
	}

	if err := s.images.RemoveByURL(ctx, s.cfg.AWS.CategoryBucket, category.BackgroundImageURL); err != nil {
		return fmt.Errorf("failed to remove background image: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(category).
		Update("background_image_url", "").Error; err != nil {
		return fmt.Errorf("failed to clear background image: %w", err)
	}
	return nil
}

// SaveColorRequest carries the writable color fields.
type SaveColorRequest struct {
	ColorName string `json:"color_name" validate:"required,min=1,max=50"`
	HexCode   string `json:"hex_code" validate:"required,hex_color"`
	Status    string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (s *CatalogService) ListColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := s.db.WithContext(ctx).Order("color_name ASC").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to load colors: %w", err)
	}
	return colors, nil
}

func (s *CatalogService) CreateColor(ctx context.Context, req SaveColorRequest) (*models.Color, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	color := models.Color{
		ColorName: req.ColorName,
		HexCode:   req.HexCode,
		Status:    models.EntityStatus(defaultStatus(req.Status)),
		Slug:      utils.Slugify(req.ColorName),
	}
	if err := s.db.WithContext(ctx).Create(&color).Error; err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}
	return &color, nil
}

func (s *CatalogService) UpdateColor(ctx context.Context, id uuid.UUID, req SaveColorRequest) (*models.Color, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var color models.Color
	if err := s.db.WithContext(ctx).First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("color not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"color_name": req.ColorName,
		"hex_code":   req.HexCode,
		"slug":       utils.Slugify(req.ColorName),
		"status":     defaultStatus(req.Status),
	}
	if err := s.db.WithContext(ctx).Model(&color).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update color: %w", err)
	}
	return &color, nil
}

func (s *CatalogService) DeleteColor(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Color{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete color: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("color not found")
	}
	return nil
}

// SaveSizeRequest carries the writable size fields.
type SaveSizeRequest struct {
	Size   string `json:"size" validate:"required,min=1,max=20"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (s *CatalogService) ListSizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to load sizes: %w", err)
	}
	return sizes, nil
}

func (s *CatalogService) CreateSize(ctx context.Context, req SaveSizeRequest) (*models.Size, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	size := models.Size{
		Size:   req.Size,
		Status: models.EntityStatus(defaultStatus(req.Status)),
	}
	if err := s.db.WithContext(ctx).Create(&size).Error; err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}
	return &size, nil
}

func (s *CatalogService) UpdateSize(ctx context.Context, id uuid.UUID, req SaveSizeRequest) (*models.Size, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var size models.Size
	if err := s.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("size not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"size":   req.Size,
		"status": defaultStatus(req.Status),
	}
	if err := s.db.WithContext(ctx).Model(&size).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update size: %w", err)
	}
	return &size, nil
}

func (s *CatalogService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Size{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete size: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("size not found")
	}
	return nil
}

func (s *CatalogService) cleanupReplaced(ctx context.Context, bucket string, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.images.RemoveByURL(ctx, bucket, url); err != nil {
			logrus.WithError(err).WithField("url", url).
				Warn("Failed to remove replaced image object")
		}
	}
}

func defaultStatus(status string) string {
	if status == "" {
		return string(models.EntityStatusActive)
	}
	return status
}
