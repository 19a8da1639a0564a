// internal/services/catalog_service_test.go
package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*CatalogService, *fakeStore) {
	t.Helper()
	db := newTestDB(t)
	store := newFakeStore()
	cfg := newTestConfig()
	images := NewImageService(db, store, cfg)
	return NewCatalogService(db, images, cfg), store
}

func TestCreateBrandDerivesSlug(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name: "New Balance & Co.",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-balance-co", brand.Slug)
	assert.Equal(t, "Active", string(brand.Status))
	assert.Empty(t, brand.ImageURL)
}

func TestCreateBrandWithImages(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name:            "Altra",
		Image:           &UploadFile{Name: "logo.png", ContentType: "image/png", Data: []byte("logo")},
		BackgroundImage: &UploadFile{Name: "hero.jpg", ContentType: "image/jpeg", Data: []byte("hero")},
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(brand.ImageURL, "/images/"))
	assert.True(t, strings.Contains(brand.BackgroundImageURL, "_bg_"))
	assert.Equal(t, 2, store.objectCount("brands"))
}

func TestUpdateBrandReplacesImageTwoPhase(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name:  "Altra",
		Image: &UploadFile{Name: "logo.png", ContentType: "image/png", Data: []byte("v1")},
	})
	require.NoError(t, err)
	oldURL := brand.ImageURL

	updated, err := catalog.UpdateBrand(context.Background(), brand.ID, SaveBrandRequest{
		Name:  "Altra",
		Image: &UploadFile{Name: "logo2.png", ContentType: "image/png", Data: []byte("v2")},
	})
	require.NoError(t, err)
	assert.NotEqual(t, oldURL, updated.ImageURL)

	// The old object is gone, the new one remains.
	assert.Equal(t, 1, store.objectCount("brands"))

	// Ordering: the new upload happened before the old removal.
	var uploadIdx, removeIdx int
	for i, op := range store.ops {
		if strings.HasPrefix(op, "upload:") && strings.Contains(op, "logo2.png") {
			uploadIdx = i
		}
		if strings.HasPrefix(op, "remove:") && strings.Contains(op, "logo.png") {
			removeIdx = i
		}
	}
	assert.Less(t, uploadIdx, removeIdx)
}

func TestUpdateBrandKeepsOldImageWhenUploadFails(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name:  "Altra",
		Image: &UploadFile{Name: "logo.png", ContentType: "image/png", Data: []byte("v1")},
	})
	require.NoError(t, err)

	store.failUploads["logo2.png"] = true
	_, err = catalog.UpdateBrand(context.Background(), brand.ID, SaveBrandRequest{
		Name:  "Altra",
		Image: &UploadFile{Name: "logo2.png", ContentType: "image/png", Data: []byte("v2")},
	})
	require.Error(t, err)

	current, err := catalog.GetBrand(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.Equal(t, brand.ImageURL, current.ImageURL, "row must keep pointing at the live object")
	assert.Equal(t, 1, store.objectCount("brands"))
}

func TestDeleteBrandFailClosed(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name:  "Altra",
		Image: &UploadFile{Name: "logo.png", ContentType: "image/png", Data: []byte("v1")},
	})
	require.NoError(t, err)

	store.failRemove = true
	require.Error(t, catalog.DeleteBrand(context.Background(), brand.ID))

	// Row survives because the object could not be removed.
	_, err = catalog.GetBrand(context.Background(), brand.ID)
	require.NoError(t, err)
}

func TestDeleteBrandRemovesObjectsAndRow(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name:            "Altra",
		Image:           &UploadFile{Name: "logo.png", ContentType: "image/png", Data: []byte("v1")},
		BackgroundImage: &UploadFile{Name: "hero.jpg", ContentType: "image/jpeg", Data: []byte("bg")},
	})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteBrand(context.Background(), brand.ID))
	assert.Equal(t, 0, store.objectCount("brands"))
	_, err = catalog.GetBrand(context.Background(), brand.ID)
	require.Error(t, err)
}

func TestDetachBrandBackground(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	brand, err := catalog.CreateBrand(context.Background(), SaveBrandRequest{
		Name:            "Altra",
		Image:           &UploadFile{Name: "logo.png", ContentType: "image/png", Data: []byte("v1")},
		BackgroundImage: &UploadFile{Name: "hero.jpg", ContentType: "image/jpeg", Data: []byte("bg")},
	})
	require.NoError(t, err)

	require.NoError(t, catalog.DetachBrandBackground(context.Background(), brand.ID))

	current, err := catalog.GetBrand(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.Empty(t, current.BackgroundImageURL)
	assert.NotEmpty(t, current.ImageURL, "primary image is untouched")
	assert.Equal(t, 1, store.objectCount("brands"))

	// Detaching again is a no-op.
	require.NoError(t, catalog.DetachBrandBackground(context.Background(), brand.ID))
}

func TestCategoryLifecycle(t *testing.T) {
	catalog, store := newCatalogFixture(t)

	category, err := catalog.CreateCategory(context.Background(), SaveCategoryRequest{
		Name:  "Running Shoes",
		Image: &UploadFile{Name: "cat.png", ContentType: "image/png", Data: []byte("img")},
	})
	require.NoError(t, err)
	assert.Equal(t, "running-shoes", category.Slug)
	assert.Equal(t, 1, store.objectCount("categories"))

	updated, err := catalog.UpdateCategory(context.Background(), category.ID, SaveCategoryRequest{
		Name:   "Trail Shoes",
		Status: "Inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "trail-shoes", updated.Slug)
	assert.Equal(t, "Inactive", string(updated.Status))
	assert.Equal(t, category.ImageURL, updated.ImageURL, "no new file means the image stays")

	require.NoError(t, catalog.DeleteCategory(context.Background(), category.ID))
	assert.Equal(t, 0, store.objectCount("categories"))
}

func TestColorValidation(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	_, err := catalog.CreateColor(context.Background(), SaveColorRequest{
		ColorName: "Crimson",
		HexCode:   "not-a-hex",
	})
	require.Error(t, err)

	color, err := catalog.CreateColor(context.Background(), SaveColorRequest{
		ColorName: "Crimson",
		HexCode:   "#DC143C",
	})
	require.NoError(t, err)
	assert.Equal(t, "crimson", color.Slug)
}

func TestSizeLifecycle(t *testing.T) {
	catalog, _ := newCatalogFixture(t)

	size, err := catalog.CreateSize(context.Background(), SaveSizeRequest{Size: "42"})
	require.NoError(t, err)
	assert.Equal(t, "Active", string(size.Status))

	updated, err := catalog.UpdateSize(context.Background(), size.ID, SaveSizeRequest{
		Size:   "42.5",
		Status: "Inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "42.5", updated.Size)

	require.NoError(t, catalog.DeleteSize(context.Background(), size.ID))
	sizes, err := catalog.ListSizes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sizes)
}
