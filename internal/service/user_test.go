package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo  *mocks.Repository
	mockUser  *mocks.UserRepository
	mockTask  *mocks.TaskRepository
	mockAudit *mocks.AuditLogRepository
	service   *UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUser = new(mocks.UserRepository)
	s.mockTask = new(mocks.TaskRepository)
	s.mockAudit = new(mocks.AuditLogRepository)

	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("Task").Return(s.mockTask)
	s.mockRepo.On("AuditLog").Return(s.mockAudit)
	s.mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil).Maybe()

	log := logger.NewNop()
	s.service = NewUserService(s.mockRepo, NewAuditRecorder(s.mockRepo, log), log)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestAddToTenant_Success() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	req := dto.CreateUserRequest{
		Email:    "new@acme.com",
		Password: "s3cret-pass",
		FullName: "New User",
	}

	s.mockUser.On("CreateInTenant", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			user.ID = "user2"
			s.Equal(domain.RoleUser, user.Role)
			s.True(user.IsActive)
			s.NotEqual("s3cret-pass", user.PasswordHash)
		}).
		Return(nil)

	resp, err := s.service.AddToTenant(ctx, tenantID, req)

	s.NoError(err)
	s.Equal("user2", resp.ID)
	s.mockUser.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAddToTenant_QuotaExceeded() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	s.mockUser.On("CreateInTenant", ctx, mock.Anything).Return(repository.ErrQuotaExceeded)

	_, err := s.service.AddToTenant(ctx, tenantID, dto.CreateUserRequest{
		Email:    "new@acme.com",
		Password: "s3cret-pass",
		FullName: "New User",
	})

	s.ErrorIs(err, ErrQuotaExceeded)
}

func (s *UserServiceTestSuite) TestAddToTenant_DuplicateEmail() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	s.mockUser.On("CreateInTenant", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := s.service.AddToTenant(ctx, tenantID, dto.CreateUserRequest{
		Email:    "taken@acme.com",
		Password: "s3cret-pass",
		FullName: "New User",
	})

	s.ErrorIs(err, ErrEmailExistsInTenant)
}

func (s *UserServiceTestSuite) TestAddToTenant_SuperAdminExcluded() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	_, err := s.service.AddToTenant(ctx, "tenant1", dto.CreateUserRequest{
		Email:    "new@acme.com",
		Password: "s3cret-pass",
		FullName: "New User",
	})

	s.ErrorIs(err, ErrForbidden)
}

func (s *UserServiceTestSuite) TestAddToTenant_ForeignTenant() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	_, err := s.service.AddToTenant(ctx, "tenant2", dto.CreateUserRequest{
		Email:    "new@acme.com",
		Password: "s3cret-pass",
		FullName: "New User",
	})

	s.ErrorIs(err, ErrNotFound)
}

func (s *UserServiceTestSuite) TestAddToTenant_SuperAdminRoleRejected() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	_, err := s.service.AddToTenant(ctx, tenantID, dto.CreateUserRequest{
		Email:    "new@acme.com",
		Password: "s3cret-pass",
		FullName: "New User",
		Role:     "super_admin",
	})

	s.ErrorIs(err, ErrValidation)
}

func (s *UserServiceTestSuite) TestUpdate_SelfRename() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	name := "Renamed"
	active := false
	// is_active is outside a regular user's allow-list and gets dropped.
	req := dto.UpdateUserRequest{FullName: &name, IsActive: &active}

	s.mockUser.On("UpdateFields", ctx, "user1", (*string)(nil), map[string]any{"full_name": "Renamed"}).
		Return(int64(1), nil)
	s.mockUser.On("GetByID", ctx, "user1", (*string)(nil)).
		Return(&domain.User{ID: "user1", FullName: "Renamed"}, nil)

	resp, err := s.service.Update(ctx, "user1", req)

	s.NoError(err)
	s.Equal("Renamed", resp.FullName)
	s.mockUser.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdate_AdminChangesRoleScopedToTenant() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	role := "tenant_admin"
	req := dto.UpdateUserRequest{Role: &role}

	s.mockUser.On("UpdateFields", ctx, "user2", &tenantID, map[string]any{"role": "tenant_admin"}).
		Return(int64(1), nil)
	s.mockUser.On("GetByID", ctx, "user2", &tenantID).
		Return(&domain.User{ID: "user2", Role: domain.RoleTenantAdmin}, nil)

	resp, err := s.service.Update(ctx, "user2", req)

	s.NoError(err)
	s.Equal(domain.RoleTenantAdmin, resp.Role)
}

func (s *UserServiceTestSuite) TestUpdate_OtherUserForbidden() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	name := "Sneaky"
	_, err := s.service.Update(ctx, "user2", dto.UpdateUserRequest{FullName: &name})

	s.ErrorIs(err, ErrForbidden)
}

func (s *UserServiceTestSuite) TestDelete_Success() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	s.mockUser.On("Delete", ctx, "user2", &tenantID).Return(int64(1), nil)

	s.NoError(s.service.Delete(ctx, "user2"))
}

func (s *UserServiceTestSuite) TestDelete_Self() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	err := s.service.Delete(ctx, "admin1")

	s.ErrorIs(err, ErrCannotDeleteSelf)
	s.mockUser.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDelete_MissReadsAsNotFound() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	s.mockUser.On("Delete", ctx, "ghost", &tenantID).Return(int64(0), nil)

	s.ErrorIs(s.service.Delete(ctx, "ghost"), ErrNotFound)
}

func (s *UserServiceTestSuite) TestGetUserTasks_Scoped() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	tasks := []domain.TaskWithNames{{Task: domain.Task{ID: "task1"}}}
	s.mockTask.On("ListAssigned", ctx, "user1", &tenantID).Return(tasks, nil)

	got, err := s.service.GetUserTasks(ctx, "user1")

	s.NoError(err)
	s.Len(got, 1)
}
