// internal/services/product_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastra/admin-backend/internal/utils"
)

func newProductFixture(t *testing.T) *ProductService {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()
	images := NewImageService(db, newFakeStore(), cfg)
	return NewProductService(db, images, cfg)
}

func TestCreateProductDerivesDiscountAndSlug(t *testing.T) {
	products := newProductFixture(t)

	product, err := products.CreateProduct(context.Background(), SaveProductRequest{
		Name:        "Cloud Monster 2",
		ActualPrice: "200",
		SellPrice:   "150",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"42", "43"},
		Brand:       "On",
	})
	require.NoError(t, err)

	assert.Equal(t, "cloud-monster-2", product.Slug)
	assert.Equal(t, 200.0, product.ActualPrice)
	assert.Equal(t, 150.0, product.SellPrice)
	assert.Equal(t, 25.0, product.Discount)
	assert.Equal(t, []string{"Black", "White"}, []string(product.Colors))
}

func TestCreateProductClearsInvalidDiscount(t *testing.T) {
	products := newProductFixture(t)

	product, err := products.CreateProduct(context.Background(), SaveProductRequest{
		Name:        "Freebie",
		ActualPrice: "0",
		SellPrice:   "10",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Discount)
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	products := newProductFixture(t)

	_, err := products.CreateProduct(context.Background(), SaveProductRequest{
		Name:        "Broken",
		ActualPrice: "lots",
		SellPrice:   "10",
	})
	require.Error(t, err)
}

func TestUpdateProductRecomputesDiscount(t *testing.T) {
	products := newProductFixture(t)

	product, err := products.CreateProduct(context.Background(), SaveProductRequest{
		Name:        "Cloud Monster 2",
		ActualPrice: "200",
		SellPrice:   "150",
	})
	require.NoError(t, err)

	updated, err := products.UpdateProduct(context.Background(), product.ID, SaveProductRequest{
		Name:        "Cloud Monster 2",
		ActualPrice: "200",
		SellPrice:   "100",
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Discount)
}

func TestListProductsPagination(t *testing.T) {
	products := newProductFixture(t)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := products.CreateProduct(context.Background(), SaveProductRequest{
			Name:        name,
			ActualPrice: "100",
			SellPrice:   "90",
		})
		require.NoError(t, err)
	}

	result, err := products.ListProducts(context.Background(), utils.PaginationParams{
		Page:  1,
		Limit: 2,
		Sort:  "name",
		Order: "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, 2, result.TotalPages)
}
