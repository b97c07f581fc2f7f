package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/domain"
)

// taskPriorityOrder sorts high before medium before low.
const taskPriorityOrder = `CASE tasks.priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 END`

// taskStatusOrder sorts todo before in_progress before completed.
const taskStatusOrder = `CASE tasks.status WHEN 'todo' THEN 1 WHEN 'in_progress' THEN 2 WHEN 'completed' THEN 3 END`

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id string, tenantID *string) (*domain.Task, error) {
	var task domain.Task
	if err := scoped(r.db.WithContext(ctx), "tasks", tenantID).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, filter domain.TaskFilter, tenantID *string) ([]domain.TaskWithNames, int64, error) {
	db := scoped(r.db.WithContext(ctx).Model(&domain.Task{}), "tasks", tenantID).
		Where("tasks.project_id = ?", filter.ProjectID)
	if filter.Status != "" {
		db = db.Where("tasks.status = ?", filter.Status)
	}
	if filter.AssignedTo != "" {
		db = db.Where("tasks.assigned_to = ?", filter.AssignedTo)
	}
	if filter.Priority != "" {
		db = db.Where("tasks.priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		db = db.Where("tasks.title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []domain.TaskWithNames
	err := paginate(db, filter.Page, filter.Limit).
		Select("tasks.*, users.full_name AS assigned_to_name").
		Joins("LEFT JOIN users ON users.id = tasks.assigned_to").
		Order(taskPriorityOrder).
		Order("tasks.due_date ASC NULLS LAST").
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *TaskRepository) ListAssigned(ctx context.Context, userID string, tenantID *string) ([]domain.TaskWithNames, error) {
	var tasks []domain.TaskWithNames
	err := scoped(r.db.WithContext(ctx).Model(&domain.Task{}), "tasks", tenantID).
		Where("tasks.assigned_to = ?", userID).
		Select("tasks.*, projects.name AS project_name").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Order(taskStatusOrder).
		Order("tasks.due_date ASC NULLS LAST").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus, tenantID *string) (int64, error) {
	result := scoped(r.db.WithContext(ctx).Model(&domain.Task{}), "tasks", tenantID).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}

func (r *TaskRepository) UpdateFields(ctx context.Context, id string, tenantID *string, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now()
	result := scoped(r.db.WithContext(ctx).Model(&domain.Task{}), "tasks", tenantID).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string, tenantID *string) (int64, error) {
	result := scoped(r.db.WithContext(ctx), "tasks", tenantID).Delete(&domain.Task{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
