// internal/services/dashboard_service_test.go
package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastra/admin-backend/internal/models"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db, NewOrderService(db))

	require.NoError(t, db.Create(&models.Brand{Name: "On", Status: models.EntityStatusActive, Slug: "on"}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Dana", Email: "d@example.com", Status: models.EntityStatusActive}).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name: fmt.Sprintf("Product %d", i),
			Slug: fmt.Sprintf("product-%d", i),
		}).Error)
	}
	require.NoError(t, db.Create(&models.OrderLine{OrderID: uuid.New(), Name: "Item", Price: "10", Status: "Pending"}).Error)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Products)
	assert.Equal(t, int64(1), stats.Orders)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.Brands)
	assert.Equal(t, int64(0), stats.Categories)
}

func TestDashboardPendingOrdersOnlyPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db, NewOrderService(db))

	require.NoError(t, db.Create(&models.OrderLine{OrderID: uuid.New(), Name: "A", Price: "10", Status: "Pending"}).Error)
	require.NoError(t, db.Create(&models.OrderLine{OrderID: uuid.New(), Name: "B", Price: "20", Status: "Delivered"}).Error)

	pending, err := svc.PendingOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "A", pending[0].Products[0].Name)
}

func TestDashboardRecentProductsCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db, NewOrderService(db))

	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name: fmt.Sprintf("Product %d", i),
			Slug: fmt.Sprintf("product-%d", i),
		}).Error)
	}

	recent, err := svc.RecentProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}
