package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
)

//go:generate mockery --name AuditLogService --output ../mocks
type AuditLogService interface {
	List(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, int64, error)
}

type AuditLogHandler struct {
	BaseHandler
	service AuditLogService
}

func NewAuditLogHandler(service AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// List returns the audit trail. Tenant admins read their own tenant's
// trail; super admins may filter any tenant via the tenantId query
// parameter.
func (h *AuditLogHandler) List(c *gin.Context) {
	page, limit := pagination(c, 50)
	filter := domain.AuditLogFilter{
		TenantID:   c.Query("tenantId"),
		UserID:     c.Query("userId"),
		Action:     c.Query("action"),
		EntityType: c.Query("entityType"),
		Page:       page,
		Limit:      limit,
	}

	logs, total, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AuditLogListData{
		Logs:       logs,
		Total:      total,
		Pagination: dto.NewPagination(page, limit, total),
	}))
}
