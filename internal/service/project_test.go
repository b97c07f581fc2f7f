package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProject *mocks.ProjectRepository
	mockAudit   *mocks.AuditLogRepository
	service     *ProjectService
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProject = new(mocks.ProjectRepository)
	s.mockAudit = new(mocks.AuditLogRepository)

	s.mockRepo.On("Project").Return(s.mockProject)
	s.mockRepo.On("AuditLog").Return(s.mockAudit)
	s.mockAudit.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLog")).Return(nil).Maybe()

	log := logger.NewNop()
	s.service = NewProjectService(s.mockRepo, NewAuditRecorder(s.mockRepo, log), log)
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

func (s *ProjectServiceTestSuite) TestCreate_RegularUserAllowed() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	req := dto.CreateProjectRequest{Name: "Website Redesign", Description: "New look"}

	s.mockProject.On("Create", ctx, mock.AnythingOfType("*domain.Project")).
		Run(func(args mock.Arguments) {
			project := args.Get(1).(*domain.Project)
			project.ID = "project1"
			s.Equal(tenantID, project.TenantID)
			s.Equal("user1", project.CreatedBy)
			s.Equal(domain.ProjectStatusActive, project.Status)
		}).
		Return(nil)

	project, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("project1", project.ID)
	s.mockProject.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) TestCreate_QuotaExceeded() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	s.mockProject.On("Create", ctx, mock.Anything).Return(repository.ErrQuotaExceeded)

	_, err := s.service.Create(ctx, dto.CreateProjectRequest{Name: "One Too Many"})

	s.ErrorIs(err, ErrQuotaExceeded)
}

func (s *ProjectServiceTestSuite) TestCreate_SuperAdminNeedsTenant() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	_, err := s.service.Create(ctx, dto.CreateProjectRequest{Name: "Orphan"})

	s.ErrorIs(err, ErrValidation)
}

func (s *ProjectServiceTestSuite) TestCreate_InvalidStatus() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	_, err := s.service.Create(ctx, dto.CreateProjectRequest{Name: "P", Status: "paused"})

	s.ErrorIs(err, ErrValidation)
}

func (s *ProjectServiceTestSuite) TestList_ScopeOverridesRequestedTenant() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	// The caller asks for another tenant; the scope silently wins.
	requested := domain.ProjectFilter{TenantID: "tenant2", Page: 1, Limit: 20}
	effective := domain.ProjectFilter{TenantID: "tenant1", Page: 1, Limit: 20}

	s.mockProject.On("ListWithCounts", ctx, effective).
		Return([]domain.ProjectWithCounts{}, int64(0), nil)

	_, err := s.service.List(ctx, requested)

	s.NoError(err)
	s.mockProject.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) TestList_SuperAdminMustNameTenant() {
	ctx := authedCtx("root", domain.RoleSuperAdmin, nil)

	_, err := s.service.List(ctx, domain.ProjectFilter{Page: 1, Limit: 20})

	s.ErrorIs(err, ErrValidation)
}

func (s *ProjectServiceTestSuite) TestUpdate_Success() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	status := "completed"
	req := dto.UpdateProjectRequest{Status: &status}

	s.mockProject.On("UpdateFields", ctx, "project1", &tenantID, map[string]any{"status": "completed"}).
		Return(int64(1), nil)
	s.mockProject.On("GetByID", ctx, "project1", &tenantID).
		Return(&domain.Project{ID: "project1", Status: domain.ProjectStatusCompleted}, nil)

	project, err := s.service.Update(ctx, "project1", req)

	s.NoError(err)
	s.Equal(domain.ProjectStatusCompleted, project.Status)
}

func (s *ProjectServiceTestSuite) TestUpdate_ForeignProjectReadsAsNotFound() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	name := "Renamed"
	s.mockProject.On("UpdateFields", ctx, "foreign", &tenantID, mock.Anything).
		Return(int64(0), nil)

	_, err := s.service.Update(ctx, "foreign", dto.UpdateProjectRequest{Name: &name})

	s.ErrorIs(err, ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestDelete_RegularUserForbidden() {
	tenantID := "tenant1"
	ctx := authedCtx("user1", domain.RoleUser, &tenantID)

	err := s.service.Delete(ctx, "project1")

	s.ErrorIs(err, ErrForbidden)
	s.mockProject.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestDelete_AdminSuccess() {
	tenantID := "tenant1"
	ctx := authedCtx("admin1", domain.RoleTenantAdmin, &tenantID)

	s.mockProject.On("Delete", ctx, "project1", &tenantID).Return(int64(1), nil)

	s.NoError(s.service.Delete(ctx, "project1"))
}
