package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/domain"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) TenantDashboard(ctx context.Context, tenantID string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM projects WHERE tenant_id = @tenant) AS total_projects,
			(SELECT COUNT(*) FROM tasks WHERE tenant_id = @tenant) AS total_tasks,
			(SELECT COUNT(*) FROM tasks WHERE tenant_id = @tenant AND status = 'completed') AS completed_tasks,
			(SELECT COUNT(*) FROM tasks WHERE tenant_id = @tenant AND status IN ('todo', 'in_progress')) AS pending_tasks,
			(SELECT COUNT(*) FROM users WHERE tenant_id = @tenant AND is_active = true) AS total_users`,
		map[string]any{"tenant": tenantID}).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) System(ctx context.Context) (*domain.SystemStats, error) {
	var stats domain.SystemStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM tenants) AS total_tenants,
			(SELECT COUNT(*) FROM tenants WHERE status = 'active') AS active_tenants,
			(SELECT COUNT(*) FROM users WHERE is_active = true) AS total_users,
			(SELECT COUNT(*) FROM projects) AS total_projects,
			(SELECT COUNT(*) FROM tasks) AS total_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'completed') AS completed_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'in_progress') AS in_progress_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'todo') AS todo_tasks`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
