// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/models"
)

func seedOrderLines(t *testing.T, db *gorm.DB, user *models.User, orderID uuid.UUID, lines ...models.OrderLine) {
	t.Helper()
	for i := range lines {
		lines[i].OrderID = orderID
		if user != nil {
			lines[i].UserID = &user.ID
		}
		require.NoError(t, db.Create(&lines[i]).Error)
	}
}

func TestListOrdersGroupsByOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := models.User{Name: "Dana", Email: "dana@example.com", Status: models.EntityStatusActive}
	require.NoError(t, db.Create(&user).Error)

	firstOrder := uuid.New()
	secondOrder := uuid.New()

	seedOrderLines(t, db, &user, firstOrder,
		models.OrderLine{Name: "Trail Runner", Color: "Red", Size: "42", Price: "89.99", Status: "Confirmed"},
		models.OrderLine{Name: "Street Low", Color: "Black", Size: "43", Price: "120.00", Status: "Confirmed"},
		models.OrderLine{Name: "Socks", Color: "White", Size: "M", Price: "9.50", Status: "Confirmed"},
	)
	seedOrderLines(t, db, &user, secondOrder,
		models.OrderLine{Name: "Cap", Color: "Navy", Size: "OS", Price: "25", Status: "Pending"},
	)

	orders, err := svc.ListOrders(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, orders, 2, "five lines over two order ids collapse into two orders")

	byID := make(map[uuid.UUID]models.Order)
	for _, order := range orders {
		byID[order.OrderID] = order
	}

	first := byID[firstOrder]
	require.Len(t, first.Products, 3)
	assert.InDelta(t, 219.49, first.TotalAmount, 0.001)
	require.NotNil(t, first.User)
	assert.Equal(t, "Dana", first.User.Name)

	second := byID[secondOrder]
	require.Len(t, second.Products, 1)
	assert.InDelta(t, 25.0, second.TotalAmount, 0.001)
}

func TestListOrdersTreatsBadPricesAsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	orderID := uuid.New()
	seedOrderLines(t, db, nil, orderID,
		models.OrderLine{Name: "Boots", Price: "150.00", Status: "Confirmed"},
		models.OrderLine{Name: "Mystery", Price: "not-a-price", Status: "Confirmed"},
		models.OrderLine{Name: "Laces", Price: "", Status: "Confirmed"},
	)

	orders, err := svc.ListOrders(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 150.0, orders[0].TotalAmount, 0.001)
	assert.Nil(t, orders[0].User)
}

func TestListOrdersDefaultsEmptyStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	seedOrderLines(t, db, nil, uuid.New(),
		models.OrderLine{Name: "Boots", Price: "10"},
	)

	orders, err := svc.ListOrders(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Confirmed", orders[0].Status)
}

func TestListOrdersStatusFilterIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	seedOrderLines(t, db, nil, uuid.New(),
		models.OrderLine{Name: "Boots", Price: "10", Status: "Pending"},
	)
	seedOrderLines(t, db, nil, uuid.New(),
		models.OrderLine{Name: "Cap", Price: "5", Status: "Delivered"},
	)

	orders, err := svc.ListOrders(context.Background(), "pending", 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Boots", orders[0].Products[0].Name)
}

func TestUpdateStatusPropagatesToAllLines(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	target := uuid.New()
	other := uuid.New()
	seedOrderLines(t, db, nil, target,
		models.OrderLine{Name: "A", Price: "1", Status: "Confirmed"},
		models.OrderLine{Name: "B", Price: "2", Status: "Confirmed"},
		models.OrderLine{Name: "C", Price: "3", Status: "Confirmed"},
	)
	seedOrderLines(t, db, nil, other,
		models.OrderLine{Name: "D", Price: "4", Status: "Confirmed"},
	)

	updated, err := svc.UpdateStatus(context.Background(), target, "Dispatched")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	var lines []models.OrderLine
	require.NoError(t, db.Where("order_id = ?", target).Find(&lines).Error)
	for _, line := range lines {
		assert.Equal(t, "Dispatched", line.Status)
	}

	// The other order is untouched.
	var untouched models.OrderLine
	require.NoError(t, db.Where("order_id = ?", other).First(&untouched).Error)
	assert.Equal(t, "Confirmed", untouched.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "Teleported")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "Delivered")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListOrdersLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	for i := 0; i < 5; i++ {
		seedOrderLines(t, db, nil, uuid.New(),
			models.OrderLine{Name: "Item", Price: "10", Status: "Pending"},
		)
		time.Sleep(time.Millisecond)
	}

	orders, err := svc.ListOrders(context.Background(), "Pending", 3)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}
