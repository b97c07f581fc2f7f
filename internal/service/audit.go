package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/utils"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

// AuditRecorder appends audit trail entries as a side effect of mutating
// operations. Writes are best-effort: a failed insert is logged and
// swallowed, never surfaced to the primary operation.
type AuditRecorder struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewAuditRecorder(repo repository.Repository, logger *logger.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, logger: logger}
}

func (a *AuditRecorder) Record(ctx context.Context, tenantID, userID *string, action, entityType, entityID, details string) {
	entry := &domain.AuditLog{
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := a.repo.AuditLog().Create(ctx, entry); err != nil {
		a.logger.Error("failed to write audit log", err,
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID))
	}
}

// AuditLogService serves the read side of the audit trail.
type AuditLogService struct {
	repo repository.Repository
}

func NewAuditLogService(repo repository.Repository) *AuditLogService {
	return &AuditLogService{repo: repo}
}

// List returns the audit trail visible to the caller: tenant admins see
// their own tenant's entries, super admins everything.
func (s *AuditLogService) List(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, int64, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, 0, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermViewAuditTrail) {
		return nil, 0, ErrForbidden
	}

	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, 0, ErrForbidden
	}

	return s.repo.AuditLog().List(ctx, filter, scope.TenantID)
}
