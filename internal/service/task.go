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
	pkgutils "github.com/taskhive/taskhive-api/pkg/utils"
)

// TaskService implements the kanban workflow. Status transitions are
// permissive: any status may be set from any status, matching free-drag
// board behavior.
type TaskService struct {
	repo   repository.Repository
	audit  *AuditRecorder
	logger *logger.Logger
}

func NewTaskService(repo repository.Repository, audit *AuditRecorder, logger *logger.Logger) *TaskService {
	return &TaskService{repo: repo, audit: audit, logger: logger}
}

// Create adds a task to a project. The project must belong to the scope
// tenant, and the assignee, when given, must belong to the same tenant as
// the project.
func (s *TaskService) Create(ctx context.Context, projectID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermManageTasks) {
		return nil, ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}

	project, err := s.repo.Project().GetByID(ctx, projectID, scope.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotInTenant
		}
		return nil, err
	}

	if req.AssignedTo != nil && *req.AssignedTo != "" {
		if _, err := s.repo.User().GetByID(ctx, *req.AssignedTo, &project.TenantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssigneeNotInTenant
			}
			return nil, err
		}
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != "" {
		if !domain.IsValidTaskPriority(req.Priority) {
			return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, req.Priority)
		}
		priority = domain.TaskPriority(req.Priority)
	}

	task := &domain.Task{
		ProjectID:   projectID,
		TenantID:    project.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatusTodo,
		Priority:    priority,
	}
	if req.AssignedTo != nil && *req.AssignedTo != "" {
		task.AssignedTo = req.AssignedTo
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := pkgutils.ParseDueDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		task.DueDate = &due
	}

	if err := s.repo.Task().Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("project_id", projectID))
	s.audit.Record(ctx, &task.TenantID, &claims.UserID, domain.ActionCreateTask, "task", task.ID, "")

	return task, nil
}

// List returns a project's tasks. Super admins see them regardless of
// tenant; everyone else is scoped.
func (s *TaskService) List(ctx context.Context, projectID string, filter domain.TaskFilter) (dto.TaskListData, error) {
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return dto.TaskListData{}, ErrForbidden
	}

	filter.ProjectID = projectID
	tasks, total, err := s.repo.Task().ListByProject(ctx, filter, scope.TenantID)
	if err != nil {
		return dto.TaskListData{}, err
	}

	return dto.TaskListData{
		Tasks:      tasks,
		Total:      total,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// UpdateStatus sets a task's status. Setting the current status again is a
// no-op that still succeeds.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID, status string) (*domain.Task, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if !domain.IsValidTaskStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}

	rows, err := s.repo.Task().UpdateStatus(ctx, taskID, domain.TaskStatus(status), scope.TenantID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	s.logger.Info("task status updated",
		zap.String("task_id", taskID),
		zap.String("status", status))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionUpdateTaskStatus, "task", taskID, status)

	return s.repo.Task().GetByID(ctx, taskID, scope.TenantID)
}

// Update applies a partial patch to a task. A present-but-empty assignedTo
// clears the assignee; a new assignee is re-validated against the task's
// tenant.
func (s *TaskService) Update(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		if !domain.IsValidTaskStatus(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		if !domain.IsValidTaskPriority(*req.Priority) {
			return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, *req.Priority)
		}
		fields["priority"] = *req.Priority
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			fields["assigned_to"] = nil
		} else {
			tenantID := scope.TenantID
			if tenantID == nil {
				task, err := s.repo.Task().GetByID(ctx, taskID, nil)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return nil, ErrNotFound
					}
					return nil, err
				}
				tenantID = &task.TenantID
			}
			if _, err := s.repo.User().GetByID(ctx, *req.AssignedTo, tenantID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrAssigneeNotInTenant
				}
				return nil, err
			}
			fields["assigned_to"] = *req.AssignedTo
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			fields["due_date"] = nil
		} else {
			due, err := pkgutils.ParseDueDate(*req.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			fields["due_date"] = due
		}
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	rows, err := s.repo.Task().UpdateFields(ctx, taskID, scope.TenantID, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	s.logger.Info("task updated", zap.String("task_id", taskID))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionUpdateTask, "task", taskID, "")

	return s.repo.Task().GetByID(ctx, taskID, scope.TenantID)
}

// Delete hard-deletes a task within the caller's scope.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return ErrForbidden
	}

	rows, err := s.repo.Task().Delete(ctx, taskID, scope.TenantID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Info("task deleted", zap.String("task_id", taskID))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionDeleteTask, "task", taskID, "")

	return nil
}
