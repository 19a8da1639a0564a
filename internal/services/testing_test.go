// internal/services/testing_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Brand{},
		&models.Category{},
		&models.Color{},
		&models.Size{},
		&models.Product{},
		&models.ProductImage{},
		&models.User{},
		&models.OrderLine{},
		&models.Admin{},
		&models.AuditLog{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		AWS: config.AWSConfig{
			Region:         "us-east-1",
			BrandBucket:    "brands",
			CategoryBucket: "categories",
			ProductBucket:  "productsimages",
		},
		Upload: config.UploadConfig{
			MaxConcurrent: 2,
			MaxFileSize:   10 * 1024 * 1024,
		},
		JWT: config.JWTConfig{
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

// fakeStore is an in-memory storage.Client. Failures are injected per file
// name; every call is appended to ops so tests can assert ordering.
type fakeStore struct {
	mu          sync.Mutex
	objects     map[string]map[string][]byte
	failUploads map[string]bool
	failList    bool
	failRemove  bool
	ops         []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:     make(map[string]map[string][]byte),
		failUploads: make(map[string]bool),
	}
}

func (f *fakeStore) Upload(_ context.Context, bucket, key string, body io.Reader, _ string, upsert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name := range f.failUploads {
		if strings.HasSuffix(key, name) {
			f.ops = append(f.ops, "upload-fail:"+key)
			return errors.New("injected upload failure")
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	if f.objects[bucket] == nil {
		f.objects[bucket] = make(map[string][]byte)
	}
	if _, exists := f.objects[bucket][key]; exists && !upsert {
		return errors.New("key already exists")
	}
	f.objects[bucket][key] = data
	f.ops = append(f.ops, "upload:"+key)
	return nil
}

func (f *fakeStore) List(_ context.Context, bucket, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failList {
		return nil, errors.New("injected list failure")
	}

	var keys []string
	for key := range f.objects[bucket] {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	f.ops = append(f.ops, "list:"+prefix)
	return keys, nil
}

func (f *fakeStore) Remove(_ context.Context, bucket string, keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failRemove {
		return errors.New("injected remove failure")
	}

	// Missing keys are not an error; removal is idempotent.
	for _, key := range keys {
		delete(f.objects[bucket], key)
		f.ops = append(f.ops, "remove:"+key)
	}
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://cdn.test/%s/%s", bucket, key)
}

func (f *fakeStore) objectCount(bucket string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects[bucket])
}
