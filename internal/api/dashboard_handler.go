package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
)

//go:generate mockery --name DashboardService --output ../mocks
type DashboardService interface {
	TenantStats(ctx context.Context, tenantID string) (*domain.DashboardStats, error)
	SystemStats(ctx context.Context) (*domain.SystemStats, error)
}

type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats returns the dashboard counters for the caller's tenant. Super
// admins pass the tenant explicitly via the tenantId query parameter.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.TenantStats(h.RequestCtx(c), c.Query("tenantId"))
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}

// SystemStats returns installation-wide counters. Super admin only,
// enforced by the route.
func (h *DashboardHandler) SystemStats(c *gin.Context) {
	stats, err := h.service.SystemStats(h.RequestCtx(c))
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}
