package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/utils"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

type TenantService struct {
	repo   repository.Repository
	audit  *AuditRecorder
	logger *logger.Logger
}

func NewTenantService(repo repository.Repository, audit *AuditRecorder, logger *logger.Logger) *TenantService {
	return &TenantService{repo: repo, audit: audit, logger: logger}
}

// GetDetails returns a tenant decorated with live counts. Tenants outside
// the caller's scope answer as not found.
func (s *TenantService) GetDetails(ctx context.Context, tenantID string) (dto.TenantDetailData, error) {
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return dto.TenantDetailData{}, ErrForbidden
	}
	if !scope.Covers(tenantID) {
		return dto.TenantDetailData{}, ErrNotFound
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TenantDetailData{}, ErrNotFound
		}
		return dto.TenantDetailData{}, err
	}

	stats, err := s.repo.Tenant().Stats(ctx, tenantID)
	if err != nil {
		return dto.TenantDetailData{}, err
	}

	return dto.TenantDetailData{Tenant: *tenant, Stats: *stats}, nil
}

// Update applies a partial tenant patch through the caller's role
// allow-list: tenant admins may rename their own tenant, super admins may
// change any field of any tenant. A plan change without explicit ceilings
// also applies the plan's default ceilings.
func (s *TenantService) Update(ctx context.Context, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if !scope.Covers(tenantID) {
		return nil, ErrNotFound
	}

	allowed := domain.TenantUpdatableFields[claims.Role]
	if len(allowed) == 0 {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if req.Name != nil && allowed["name"] {
		fields["name"] = *req.Name
	}
	if req.Subdomain != nil && allowed["subdomain"] {
		fields["subdomain"] = *req.Subdomain
	}
	if req.Status != nil && allowed["status"] {
		if !domain.IsValidTenantStatus(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.SubscriptionPlan != nil && allowed["subscription_plan"] {
		if !domain.IsValidPlan(*req.SubscriptionPlan) {
			return nil, fmt.Errorf("%w: invalid subscription plan %q", ErrValidation, *req.SubscriptionPlan)
		}
		fields["subscription_plan"] = *req.SubscriptionPlan
		limits := domain.DefaultPlanLimits[domain.SubscriptionPlan(*req.SubscriptionPlan)]
		fields["max_users"] = limits.MaxUsers
		fields["max_projects"] = limits.MaxProjects
	}
	if req.MaxUsers != nil && allowed["max_users"] {
		fields["max_users"] = *req.MaxUsers
	}
	if req.MaxProjects != nil && allowed["max_projects"] {
		fields["max_projects"] = *req.MaxProjects
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	rows, err := s.repo.Tenant().UpdateFields(ctx, tenantID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubdomainTaken
		}
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	s.logger.Info("tenant updated", zap.String("tenant_id", tenantID))
	s.audit.Record(ctx, &tenantID, &claims.UserID, domain.ActionUpdateTenant, "tenant", tenantID, "")
	if req.SubscriptionPlan != nil {
		s.audit.Record(ctx, &tenantID, &claims.UserID, domain.ActionSubscriptionChange, "tenant", tenantID,
			fmt.Sprintf("changed to %s", *req.SubscriptionPlan))
	}

	return s.repo.Tenant().GetByID(ctx, tenantID)
}

// ListAll returns the paginated tenant roster with live counts.
// Super admin only.
func (s *TenantService) ListAll(ctx context.Context, filter domain.TenantFilter) (dto.TenantListData, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return dto.TenantListData{}, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermListAllTenants) {
		return dto.TenantListData{}, ErrForbidden
	}

	tenants, total, err := s.repo.Tenant().ListWithStats(ctx, filter)
	if err != nil {
		return dto.TenantListData{}, err
	}

	return dto.TenantListData{
		Tenants:    tenants,
		Total:      total,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Plan resolves a tenant's subscription plan. Backs the rate limiter's plan
// lookup; no authorization applies because it never reaches callers.
func (s *TenantService) Plan(ctx context.Context, tenantID string) (domain.SubscriptionPlan, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return "", err
	}
	return tenant.SubscriptionPlan, nil
}
