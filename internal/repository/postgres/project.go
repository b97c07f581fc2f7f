package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/repository"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project after checking the tenant's max_projects ceiling.
// The count-then-insert sequence is serialized per tenant by a FOR UPDATE
// lock on the tenant row.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenant domain.Tenant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tenant, "id = ?", project.TenantID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.Project{}).
			Where("tenant_id = ?", project.TenantID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(tenant.MaxProjects) {
			return repository.ErrQuotaExceeded
		}

		return tx.Create(project).Error
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string, tenantID *string) (*domain.Project, error) {
	var project domain.Project
	if err := scoped(r.db.WithContext(ctx), "projects", tenantID).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) ListWithCounts(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithCounts, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Project{}).Where("projects.tenant_id = ?", filter.TenantID)
	if filter.Status != "" {
		db = db.Where("projects.status = ?", filter.Status)
	}
	if filter.Search != "" {
		db = db.Where("projects.name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []domain.ProjectWithCounts
	err := paginate(db, filter.Page, filter.Limit).
		Select(`projects.*, users.full_name AS created_by_name,
			(SELECT COUNT(*) FROM tasks WHERE tasks.project_id = projects.id) AS task_count,
			(SELECT COUNT(*) FROM tasks WHERE tasks.project_id = projects.id AND tasks.status = 'completed') AS completed_task_count`).
		Joins("LEFT JOIN users ON users.id = projects.created_by").
		Order("projects.created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *ProjectRepository) UpdateFields(ctx context.Context, id string, tenantID *string, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now()
	result := scoped(r.db.WithContext(ctx).Model(&domain.Project{}), "projects", tenantID).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id string, tenantID *string) (int64, error) {
	result := scoped(r.db.WithContext(ctx), "projects", tenantID).Delete(&domain.Project{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
