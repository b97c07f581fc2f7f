package service

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/utils"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

// DashboardService aggregates counters for the tenant dashboard and the
// installation-wide admin view.
type DashboardService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewDashboardService(repo repository.Repository, logger *logger.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

// TenantStats returns the dashboard counters for the caller's tenant. Super
// admins must name a tenant explicitly via tenantID; for everyone else the
// parameter is ignored in favor of their own tenant.
func (s *DashboardService) TenantStats(ctx context.Context, tenantID string) (*domain.DashboardStats, error) {
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}

	if !scope.Unscoped() {
		tenantID = *scope.TenantID
	}
	if tenantID == "" {
		return nil, ErrValidation
	}

	return s.repo.Stats().TenantDashboard(ctx, tenantID)
}

// SystemStats returns installation-wide counters. Super admin only.
func (s *DashboardService) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermViewSystemStats) {
		return nil, ErrForbidden
	}

	return s.repo.Stats().System(ctx)
}
