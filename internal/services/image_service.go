// internal/services/image_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/models"
	"github.com/vastra/admin-backend/internal/storage"
)

// ImageService keeps the object-store buckets and the image metadata rows in
// agreement for products (many images), brands and categories (one optional
// image/background-image pair each).
//
// The coupling is best-effort, not transactional: an upload that lands in the
// bucket before the metadata insert fails leaves an orphaned object, and an
// owner deletion that fails halfway leaves a partially emptied prefix. Both
// gaps are inherited from the system this replaces and surface in logs rather
// than being retried or rolled back.
type ImageService struct {
	db    *gorm.DB
	store storage.Client
	cfg   *config.Config
}

func NewImageService(db *gorm.DB, store storage.Client, cfg *config.Config) *ImageService {
	return &ImageService{
		db:    db,
		store: store,
		cfg:   cfg,
	}
}

// UploadFile is one upload candidate, already read off the wire.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type UploadStatus string

const (
	UploadStatusUploaded UploadStatus = "uploaded"
	UploadStatusFailed   UploadStatus = "failed"
)

// UploadOutcome is the per-file result of a batch upload. Failures carry the
// error message instead of silently disappearing from the response.
type UploadOutcome struct {
	FileName string       `json:"file_name"`
	Key      string       `json:"key,omitempty"`
	URL      string       `json:"url,omitempty"`
	Status   UploadStatus `json:"status"`
	Error    string       `json:"error,omitempty"`
}

// UploadProductImages uploads the batch under the product's storage prefix
// and records one metadata row per successful upload in a single batch
// insert. Files upload concurrently through a bounded pool; one failed file
// never aborts the rest of the batch.
func (s *ImageService) UploadProductImages(ctx context.Context, productID uuid.UUID, files []UploadFile) ([]UploadOutcome, []models.ProductImage, error) {
	if len(files) == 0 {
		return nil, nil, errors.New("no files to upload")
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New("product not found")
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	bucket := s.cfg.AWS.ProductBucket
	outcomes := make([]UploadOutcome, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Upload.MaxConcurrent)

	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			file := files[i]
			key := fmt.Sprintf("%s/%s_%d_%d_%s", productID, productID, time.Now().UnixMilli(), i, file.Name)

			err := s.store.Upload(ctx, bucket, key, bytes.NewReader(file.Data), file.ContentType, false)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"product_id": productID,
					"file":       file.Name,
				}).Warn("Product image upload failed")
				outcomes[i] = UploadOutcome{
					FileName: file.Name,
					Status:   UploadStatusFailed,
					Error:    err.Error(),
				}
				return
			}

			outcomes[i] = UploadOutcome{
				FileName: file.Name,
				Key:      key,
				URL:      s.store.PublicURL(bucket, key),
				Status:   UploadStatusUploaded,
			}
		}(i)
	}
	wg.Wait()

	var rows []models.ProductImage
	for _, outcome := range outcomes {
		if outcome.Status != UploadStatusUploaded {
			continue
		}
		rows = append(rows, models.ProductImage{
			ProductID: productID,
			ImageURL:  outcome.URL,
		})
	}

	if len(rows) == 0 {
		return outcomes, nil, nil
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		// The uploaded objects stay behind with no metadata rows. Known
		// consistency gap: there is no compensation pass here.
		logrus.WithError(err).WithField("product_id", productID).
			Error("Metadata insert failed after upload; stored objects are now orphaned")
		return outcomes, nil, fmt.Errorf("failed to record image metadata: %w", err)
	}

	return outcomes, rows, nil
}

func (s *ImageService) ListProductImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to load product images: %w", err)
	}
	return images, nil
}

// AssignImageColor tags an image with a color variant. A nil colorID clears
// the tag. Metadata-only: storage is never touched.
func (s *ImageService) AssignImageColor(ctx context.Context, imageID uuid.UUID, colorID *uuid.UUID) error {
	if colorID != nil {
		var color models.Color
		if err := s.db.WithContext(ctx).First(&color, "id = ?", *colorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("color not found")
			}
			return fmt.Errorf("database error: %w", err)
		}
	}

	result := s.db.WithContext(ctx).Model(&models.ProductImage{}).
		Where("id = ?", imageID).
		Update("color_id", colorID)
	if result.Error != nil {
		return fmt.Errorf("failed to assign image color: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("image not found")
	}

	return nil
}

// DeleteImage removes one image: storage object first, metadata row second.
// A storage failure aborts before the row is touched so the row keeps
// pointing at a live object.
func (s *ImageService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	var image models.ProductImage
	if err := s.db.WithContext(ctx).First(&image, "id = ?", imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("image not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	key := objectKeyFromURL(image.ImageURL)
	if err := s.store.Remove(ctx, s.cfg.AWS.ProductBucket, []string{key}); err != nil {
		return fmt.Errorf("failed to remove stored object: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&image).Error; err != nil {
		return fmt.Errorf("failed to delete image row: %w", err)
	}

	return nil
}

// DeleteProductAssets clears everything the product owns in storage and the
// metadata table, in order: list the prefix, bulk-remove the listed objects,
// bulk-delete the rows. Any failure aborts before the caller may delete the
// product row itself (fail-closed), but objects already removed in the bulk
// delete are not restored.
func (s *ImageService) DeleteProductAssets(ctx context.Context, productID uuid.UUID) error {
	bucket := s.cfg.AWS.ProductBucket
	prefix := productID.String() + "/"

	keys, err := s.store.List(ctx, bucket, prefix)
	if err != nil {
		return fmt.Errorf("failed to list product objects: %w", err)
	}

	if len(keys) > 0 {
		if err := s.store.Remove(ctx, bucket, keys); err != nil {
			return fmt.Errorf("failed to remove product objects: %w", err)
		}
	}

	if err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete image rows: %w", err)
	}

	return nil
}

// UploadOwnerImage stores a single-image owner's file (brand or category)
// under the flat images/ prefix and returns its public URL.
func (s *ImageService) UploadOwnerImage(ctx context.Context, bucket string, file UploadFile, background bool) (string, error) {
	var key string
	if background {
		key = fmt.Sprintf("images/%d_bg_%s", time.Now().UnixMilli(), file.Name)
	} else {
		key = fmt.Sprintf("images/%d_%s", time.Now().UnixMilli(), file.Name)
	}

	if err := s.store.Upload(ctx, bucket, key, bytes.NewReader(file.Data), file.ContentType, false); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.store.PublicURL(bucket, key), nil
}

// RemoveByURL removes the stored object a public URL points at. Missing
// objects are not an error.
func (s *ImageService) RemoveByURL(ctx context.Context, bucket, url string) error {
	if url == "" {
		return nil
	}
	return s.store.Remove(ctx, bucket, []string{objectKeyFromURL(url)})
}

// objectKeyFromURL recovers the object key from a public URL. Keys in this
// system are always two segments deep (prefix/filename), so the last two
// path segments are the key.
func objectKeyFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return url
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
