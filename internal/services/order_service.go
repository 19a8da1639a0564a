// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/models"
)

// OrderService turns the flat order_details rows into per-order views and
// propagates status changes back down to every line of an order.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// ListOrders groups order lines by order id, newest lines first, so the
// first line seen for an order fixes the order's position, timestamp and
// user. An empty status means no filtering; matching is case-insensitive.
//
// The user lookup is best-effort: if it fails, orders come back with a nil
// user rather than failing the whole listing.
func (s *OrderService) ListOrders(ctx context.Context, status string, limit int) ([]models.Order, error) {
	query := s.db.WithContext(ctx).
		Model(&models.OrderLine{}).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("LOWER(status) = LOWER(?)", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var lines []models.OrderLine
	if err := query.Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}

	users := s.lookupUsers(ctx, lines)

	groups := make(map[uuid.UUID]*models.Order)
	var orders []*models.Order
	for _, line := range lines {
		order, ok := groups[line.OrderID]
		if !ok {
			lineStatus := line.Status
			if lineStatus == "" {
				lineStatus = string(models.OrderStatusConfirmed)
			}
			order = &models.Order{
				OrderID:   line.OrderID,
				CreatedAt: line.CreatedAt,
				Status:    lineStatus,
			}
			if line.UserID != nil {
				order.User = users[*line.UserID]
			}
			groups[line.OrderID] = order
			orders = append(orders, order)
		}

		order.Products = append(order.Products, models.OrderProduct{
			Name:  line.Name,
			Color: line.Color,
			Size:  line.Size,
			Price: line.Price,
		})
		order.TotalAmount += priceValue(line.Price)
	}

	result := make([]models.Order, len(orders))
	for i, order := range orders {
		result[i] = *order
	}
	return result, nil
}

func (s *OrderService) lookupUsers(ctx context.Context, lines []models.OrderLine) map[uuid.UUID]*models.User {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, line := range lines {
		if line.UserID != nil && !seen[*line.UserID] {
			seen[*line.UserID] = true
			ids = append(ids, *line.UserID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		logrus.WithError(err).Warn("User lookup for orders failed; listing orders without user details")
		return nil
	}

	byID := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID
}

// UpdateStatus sets the status on every line of one order and reports how
// many lines changed. Lines of other orders are never touched.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (int64, error) {
	if !models.ValidOrderStatus(status) {
		return 0, fmt.Errorf("invalid order status: %s", status)
	}

	result := s.db.WithContext(ctx).
		Model(&models.OrderLine{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errors.New("order not found")
	}

	return result.RowsAffected, nil
}
