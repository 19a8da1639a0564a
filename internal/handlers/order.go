// internal/handlers/order.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List returns grouped order views, newest first. Supports ?status= and
// ?limit= filters.
// GET /v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	orders, err := h.orders.ListOrders(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, orders)
}

// UpdateStatus sets a new status on every line of one order.
// PATCH /v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	updated, err := h.orders.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order_id":      orderID,
		"status":        req.Status,
		"lines_updated": updated,
	})
}
