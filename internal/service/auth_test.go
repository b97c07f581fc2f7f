package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockUser   *mocks.UserRepository
	mockAudit  *mocks.AuditLogRepository
	service    *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockUser = new(mocks.UserRepository)
	s.mockAudit = new(mocks.AuditLogRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("AuditLog").Return(s.mockAudit)
	s.mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil).Maybe()

	log := logger.NewNop()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	s.service = NewAuthService(s.mockRepo, tokens, NewAuditRecorder(s.mockRepo, log), log)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegisterTenant_Success() {
	ctx := context.Background()
	req := dto.RegisterTenantRequest{
		TenantName:    "Acme Inc",
		Subdomain:     "acme",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "s3cret-pass",
		AdminFullName: "Ada Admin",
	}

	s.mockTenant.On("GetBySubdomain", ctx, "acme").Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("RegisterTenant", ctx, mock.AnythingOfType("*domain.Tenant"), mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			tenant := args.Get(1).(*domain.Tenant)
			admin := args.Get(2).(*domain.User)
			tenant.ID = "tenant1"
			admin.ID = "user1"
			admin.TenantID = &tenant.ID
		}).
		Return(nil)

	data, err := s.service.RegisterTenant(ctx, req)

	s.NoError(err)
	s.Equal("tenant1", data.TenantID)
	s.Equal("acme", data.Subdomain)
	s.Equal(domain.RoleTenantAdmin, data.User.Role)
	s.NotEmpty(data.Token)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegisterTenant_FreePlanLimits() {
	ctx := context.Background()
	req := dto.RegisterTenantRequest{
		TenantName:    "Acme Inc",
		Subdomain:     "acme",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "s3cret-pass",
		AdminFullName: "Ada Admin",
	}

	s.mockTenant.On("GetBySubdomain", ctx, "acme").Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("RegisterTenant", ctx, mock.AnythingOfType("*domain.Tenant"), mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			tenant := args.Get(1).(*domain.Tenant)
			s.Equal(domain.PlanFree, tenant.SubscriptionPlan)
			s.Equal(5, tenant.MaxUsers)
			s.Equal(3, tenant.MaxProjects)
		}).
		Return(nil)

	_, err := s.service.RegisterTenant(ctx, req)
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestRegisterTenant_SubdomainTaken() {
	ctx := context.Background()
	existing := &domain.Tenant{ID: "tenant1", Subdomain: "acme"}
	s.mockTenant.On("GetBySubdomain", ctx, "acme").Return(existing, nil)

	_, err := s.service.RegisterTenant(ctx, dto.RegisterTenantRequest{
		TenantName:    "Acme Inc",
		Subdomain:     "acme",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "s3cret-pass",
		AdminFullName: "Ada Admin",
	})

	s.ErrorIs(err, ErrSubdomainTaken)
	s.mockTenant.AssertNotCalled(s.T(), "RegisterTenant", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegisterTenant_DuplicateUnderRace() {
	ctx := context.Background()
	s.mockTenant.On("GetBySubdomain", ctx, "acme").Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("RegisterTenant", ctx, mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := s.service.RegisterTenant(ctx, dto.RegisterTenantRequest{
		TenantName:    "Acme Inc",
		Subdomain:     "acme",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "s3cret-pass",
		AdminFullName: "Ada Admin",
	})

	s.ErrorIs(err, ErrSubdomainTaken)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, _ := auth.HashPassword("s3cret-pass")
	tenantID := "tenant1"
	user := &domain.User{
		ID:           "user1",
		TenantID:     &tenantID,
		Email:        "admin@acme.com",
		PasswordHash: hash,
		Role:         domain.RoleTenantAdmin,
		IsActive:     true,
		Tenant:       &domain.Tenant{ID: tenantID, Status: domain.TenantStatusActive},
	}

	s.mockUser.On("GetActiveByEmail", ctx, "admin@acme.com", "acme").Return(user, nil)

	data, err := s.service.Login(ctx, dto.LoginRequest{
		Email:           "admin@acme.com",
		Password:        "s3cret-pass",
		TenantSubdomain: "acme",
	})

	s.NoError(err)
	s.Equal("user1", data.User.ID)
	s.NotEmpty(data.Token)
	s.Equal(3600, data.ExpiresIn)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, _ := auth.HashPassword("correct-pass")
	tenantID := "tenant1"
	user := &domain.User{
		ID:           "user1",
		TenantID:     &tenantID,
		Email:        "admin@acme.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	s.mockUser.On("GetActiveByEmail", ctx, "admin@acme.com", "").Return(user, nil)

	_, err := s.service.Login(ctx, dto.LoginRequest{
		Email:    "admin@acme.com",
		Password: "wrong-pass",
	})

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmailIndistinguishable() {
	ctx := context.Background()
	s.mockUser.On("GetActiveByEmail", ctx, "nobody@acme.com", "").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Login(ctx, dto.LoginRequest{
		Email:    "nobody@acme.com",
		Password: "whatever",
	})

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_SuspendedTenant() {
	ctx := context.Background()
	hash, _ := auth.HashPassword("s3cret-pass")
	tenantID := "tenant1"
	user := &domain.User{
		ID:           "user1",
		TenantID:     &tenantID,
		Email:        "admin@acme.com",
		PasswordHash: hash,
		Role:         domain.RoleTenantAdmin,
		IsActive:     true,
		Tenant:       &domain.Tenant{ID: tenantID, Status: domain.TenantStatusSuspended},
	}

	s.mockUser.On("GetActiveByEmail", ctx, "admin@acme.com", "").Return(user, nil)

	_, err := s.service.Login(ctx, dto.LoginRequest{
		Email:    "admin@acme.com",
		Password: "s3cret-pass",
	})

	s.ErrorIs(err, ErrTenantSuspended)
}

func (s *AuthServiceTestSuite) TestGetCurrentUser_WithTenant() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	user := &domain.User{
		ID:       "user1",
		TenantID: &tenantID,
		Email:    "user1@example.com",
		Role:     domain.RoleUser,
	}
	tenant := &domain.Tenant{
		ID:        tenantID,
		Name:      "Acme Inc",
		Subdomain: "acme",
	}

	s.mockUser.On("GetByID", ctx, "user1", (*string)(nil)).Return(user, nil)
	s.mockTenant.On("GetByID", ctx, tenantID).Return(tenant, nil)

	data, err := s.service.GetCurrentUser(ctx)

	s.NoError(err)
	s.Equal("user1", data.ID)
	s.Require().NotNil(data.Tenant)
	s.Equal("acme", data.Tenant.Subdomain)
}

func (s *AuthServiceTestSuite) TestGetCurrentUser_SuperAdminHasNoTenant() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	user := &domain.User{ID: "root", Role: domain.RoleSuperAdmin}
	s.mockUser.On("GetByID", ctx, "root", (*string)(nil)).Return(user, nil)

	data, err := s.service.GetCurrentUser(ctx)

	s.NoError(err)
	s.Nil(data.Tenant)
	s.mockTenant.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}
