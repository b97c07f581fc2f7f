package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockAudit  *mocks.AuditLogRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockAudit = new(mocks.AuditLogRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("AuditLog").Return(s.mockAudit)
	s.mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil).Maybe()

	log := logger.NewNop()
	s.service = NewTenantService(s.mockRepo, NewAuditRecorder(s.mockRepo, log), log)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestGetDetails_OwnTenant() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	tenant := &domain.Tenant{ID: tenantID, Name: "Acme Inc"}
	stats := &domain.TenantStats{TotalUsers: 3, TotalProjects: 2}

	s.mockTenant.On("GetByID", ctx, tenantID).Return(tenant, nil)
	s.mockTenant.On("Stats", ctx, tenantID).Return(stats, nil)

	data, err := s.service.GetDetails(ctx, tenantID)

	s.NoError(err)
	s.Equal("Acme Inc", data.Name)
	s.Equal(int64(3), data.Stats.TotalUsers)
}

func (s *TenantServiceTestSuite) TestGetDetails_ForeignTenantReadsAsNotFound() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleTenantAdmin, &tenantID)

	_, err := s.service.GetDetails(ctx, "tenant2")

	s.ErrorIs(err, ErrNotFound)
	s.mockTenant.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_TenantAdminMayOnlyRename() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	name := "New Name"
	plan := "enterprise"
	req := dto.UpdateTenantRequest{Name: &name, SubscriptionPlan: &plan}

	s.mockTenant.On("UpdateFields", ctx, tenantID, map[string]any{"name": "New Name"}).
		Return(int64(1), nil)
	s.mockTenant.On("GetByID", ctx, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "New Name"}, nil)

	tenant, err := s.service.Update(ctx, tenantID, req)

	s.NoError(err)
	s.Equal("New Name", tenant.Name)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestUpdate_PlanChangeAppliesDefaultLimits() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	plan := "pro"
	req := dto.UpdateTenantRequest{SubscriptionPlan: &plan}

	expected := map[string]any{
		"subscription_plan": "pro",
		"max_users":         25,
		"max_projects":      15,
	}
	s.mockTenant.On("UpdateFields", ctx, "tenant1", expected).Return(int64(1), nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").
		Return(&domain.Tenant{ID: "tenant1", SubscriptionPlan: domain.PlanPro}, nil)

	_, err := s.service.Update(ctx, "tenant1", req)

	s.NoError(err)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestUpdate_ExplicitCeilingOverridesPlanDefault() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	plan := "pro"
	maxUsers := 40
	req := dto.UpdateTenantRequest{SubscriptionPlan: &plan, MaxUsers: &maxUsers}

	expected := map[string]any{
		"subscription_plan": "pro",
		"max_users":         40,
		"max_projects":      15,
	}
	s.mockTenant.On("UpdateFields", ctx, "tenant1", expected).Return(int64(1), nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").
		Return(&domain.Tenant{ID: "tenant1"}, nil)

	_, err := s.service.Update(ctx, "tenant1", req)
	s.NoError(err)
}

func (s *TenantServiceTestSuite) TestUpdate_InvalidStatus() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	status := "frozen"
	_, err := s.service.Update(ctx, "tenant1", dto.UpdateTenantRequest{Status: &status})

	s.ErrorIs(err, ErrValidation)
}

func (s *TenantServiceTestSuite) TestUpdate_RegularUserForbidden() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	name := "New Name"
	_, err := s.service.Update(ctx, tenantID, dto.UpdateTenantRequest{Name: &name})

	s.ErrorIs(err, ErrForbidden)
}

func (s *TenantServiceTestSuite) TestUpdate_NothingApplicable() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	// Plan is outside the tenant admin allow-list, so the patch is empty.
	plan := "enterprise"
	_, err := s.service.Update(ctx, tenantID, dto.UpdateTenantRequest{SubscriptionPlan: &plan})

	s.ErrorIs(err, ErrNoFieldsToUpdate)
}

func (s *TenantServiceTestSuite) TestListAll_SuperAdminOnly() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	_, err := s.service.ListAll(ctx, domain.TenantFilter{Page: 1, Limit: 10})

	s.ErrorIs(err, ErrForbidden)
}

func (s *TenantServiceTestSuite) TestListAll_Success() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	filter := domain.TenantFilter{Page: 1, Limit: 10}
	tenants := []domain.TenantWithStats{
		{Tenant: domain.Tenant{ID: "tenant1"}, TotalUsers: 4},
		{Tenant: domain.Tenant{ID: "tenant2"}, TotalUsers: 9},
	}
	s.mockTenant.On("ListWithStats", ctx, filter).Return(tenants, int64(2), nil)

	data, err := s.service.ListAll(ctx, filter)

	s.NoError(err)
	s.Len(data.Tenants, 2)
	s.Equal(int64(2), data.Total)
	s.Equal(1, data.Pagination.TotalPages)
}
