package postgres

import (
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/repository"
)

type postgresRepository struct {
	db          *gorm.DB
	tenantRepo  repository.TenantRepository
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	auditRepo   repository.AuditLogRepository
	statsRepo   repository.StatsRepository
}

func NewRepository(db *gorm.DB) repository.Repository {
	return &postgresRepository{
		db:          db,
		tenantRepo:  NewTenantRepository(db),
		userRepo:    NewUserRepository(db),
		projectRepo: NewProjectRepository(db),
		taskRepo:    NewTaskRepository(db),
		auditRepo:   NewAuditLogRepository(db),
		statsRepo:   NewStatsRepository(db),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Project() repository.ProjectRepository {
	return r.projectRepo
}

func (r *postgresRepository) Task() repository.TaskRepository {
	return r.taskRepo
}

func (r *postgresRepository) AuditLog() repository.AuditLogRepository {
	return r.auditRepo
}

func (r *postgresRepository) Stats() repository.StatsRepository {
	return r.statsRepo
}
