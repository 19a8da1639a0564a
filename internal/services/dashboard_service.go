// internal/services/dashboard_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/models"
)

// DashboardService backs the admin landing page: entity counts plus the two
// short activity lists (pending orders and recently added products).
type DashboardService struct {
	db     *gorm.DB
	orders *OrderService
}

func NewDashboardService(db *gorm.DB, orders *OrderService) *DashboardService {
	return &DashboardService{db: db, orders: orders}
}

type DashboardStats struct {
	Products   int64 `json:"products"`
	Orders     int64 `json:"orders"`
	Users      int64 `json:"users"`
	Brands     int64 `json:"brands"`
	Categories int64 `json:"categories"`
}

// Stats runs count-only queries; no rows are materialized.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Product{}, &stats.Products},
		{&models.OrderLine{}, &stats.Orders},
		{&models.User{}, &stats.Users},
		{&models.Brand{}, &stats.Brands},
		{&models.Category{}, &stats.Categories},
	}

	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count dashboard stats: %w", err)
		}
	}
	return stats, nil
}

// PendingOrders lists up to 20 orders currently awaiting action.
func (s *DashboardService) PendingOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListOrders(ctx, string(models.OrderStatusPending), 20)
}

// RecentProducts lists the 5 most recently added products.
func (s *DashboardService) RecentProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(5).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent products: %w", err)
	}
	return products, nil
}
