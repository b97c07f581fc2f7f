package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	GetDetails(ctx context.Context, tenantID string) (dto.TenantDetailData, error)
	Update(ctx context.Context, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error)
	ListAll(ctx context.Context, filter domain.TenantFilter) (dto.TenantListData, error)
}

type TenantHandler struct {
	BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// List returns the tenant roster with aggregate stats. Super admin only,
// enforced by the route.
func (h *TenantHandler) List(c *gin.Context) {
	page, limit := pagination(c, 10)
	filter := domain.TenantFilter{
		Status:           c.Query("status"),
		SubscriptionPlan: c.Query("subscriptionPlan"),
		Page:             page,
		Limit:            limit,
	}

	data, err := h.service.ListAll(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}

// Get returns one tenant with its usage stats. Tenant members see only
// their own tenant; an out-of-scope id reads as not found.
func (h *TenantHandler) Get(c *gin.Context) {
	data, err := h.service.GetDetails(h.RequestCtx(c), c.Param("tenantId"))
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}

// Update applies a partial tenant patch filtered by the caller's role
// allow-list.
func (h *TenantHandler) Update(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), c.Param("tenantId"), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("tenant updated successfully", tenant))
}
