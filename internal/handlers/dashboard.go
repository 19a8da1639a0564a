// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Overview bundles the landing page data in one response: entity counts,
// pending orders and the latest products.
// GET /v1/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.dashboard.Stats(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pending, err := h.dashboard.PendingOrders(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recent, err := h.dashboard.RecentProducts(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats":           stats,
		"pending_orders":  pending,
		"recent_products": recent,
	})
}
