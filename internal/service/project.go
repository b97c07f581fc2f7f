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

type ProjectService struct {
	repo   repository.Repository
	audit  *AuditRecorder
	logger *logger.Logger
}

func NewProjectService(repo repository.Repository, audit *AuditRecorder, logger *logger.Logger) *ProjectService {
	return &ProjectService{repo: repo, audit: audit, logger: logger}
}

// Create inserts a project into the caller's tenant, subject to the
// max_projects ceiling. Super admins must name a target tenant through
// their request scope and are not quota-exempt.
func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermCreateProject) {
		return nil, ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if scope.TenantID == nil {
		return nil, fmt.Errorf("%w: project creation requires a tenant", ErrValidation)
	}

	status := domain.ProjectStatusActive
	if req.Status != "" {
		if !domain.IsValidProjectStatus(req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, req.Status)
		}
		status = domain.ProjectStatus(req.Status)
	}

	project := &domain.Project{
		TenantID:    *scope.TenantID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		CreatedBy:   claims.UserID,
	}

	if err := s.repo.Project().Create(ctx, project); err != nil {
		switch {
		case errors.Is(err, repository.ErrQuotaExceeded):
			return nil, ErrQuotaExceeded
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("tenant_id", project.TenantID))
	s.audit.Record(ctx, &project.TenantID, &claims.UserID, domain.ActionCreateProject, "project", project.ID, "")

	return project, nil
}

// List returns the scope tenant's projects decorated with task aggregates.
func (s *ProjectService) List(ctx context.Context, filter domain.ProjectFilter) (dto.ProjectListData, error) {
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return dto.ProjectListData{}, ErrForbidden
	}
	if scope.TenantID == nil {
		if filter.TenantID == "" {
			return dto.ProjectListData{}, fmt.Errorf("%w: tenant_id is required", ErrValidation)
		}
	} else {
		filter.TenantID = *scope.TenantID
	}

	projects, total, err := s.repo.Project().ListWithCounts(ctx, filter)
	if err != nil {
		return dto.ProjectListData{}, err
	}

	return dto.ProjectListData{
		Projects:   projects,
		Total:      total,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Update applies a partial patch to a project within the caller's scope.
func (s *ProjectService) Update(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermUpdateProject) {
		return nil, ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		if !domain.IsValidProjectStatus(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *req.Status)
		}
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	rows, err := s.repo.Project().UpdateFields(ctx, projectID, scope.TenantID, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	s.logger.Info("project updated", zap.String("project_id", projectID))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionUpdateProject, "project", projectID, "")

	return s.repo.Project().GetByID(ctx, projectID, scope.TenantID)
}

// Delete removes a project and, through the store's referential rules, its
// tasks. Admins only.
func (s *ProjectService) Delete(ctx context.Context, projectID string) error {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermDeleteProject) {
		return ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return ErrForbidden
	}

	rows, err := s.repo.Project().Delete(ctx, projectID, scope.TenantID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Info("project deleted", zap.String("project_id", projectID))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionDeleteProject, "project", projectID, "")

	return nil
}
