package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/domain"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) RegisterTenant(ctx context.Context, tenant *domain.Tenant, admin *domain.User) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.TenantID = &tenant.ID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		return tx.Create(admin).Error
	})
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "subdomain = ?", subdomain).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&domain.Tenant{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *TenantRepository) ListWithStats(ctx context.Context, filter domain.TenantFilter) ([]domain.TenantWithStats, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Tenant{})
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.SubscriptionPlan != "" {
		db = db.Where("subscription_plan = ?", filter.SubscriptionPlan)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tenants []domain.TenantWithStats
	err := paginate(db, filter.Page, filter.Limit).
		Select(`tenants.*,
			(SELECT COUNT(*) FROM users WHERE users.tenant_id = tenants.id) AS total_users,
			(SELECT COUNT(*) FROM projects WHERE projects.tenant_id = tenants.id) AS total_projects,
			(SELECT COUNT(*) FROM tasks WHERE tasks.tenant_id = tenants.id) AS total_tasks`).
		Order("created_at DESC").
		Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

func (r *TenantRepository) Stats(ctx context.Context, id string) (*domain.TenantStats, error) {
	var stats domain.TenantStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users WHERE tenant_id = ?) AS total_users,
			(SELECT COUNT(*) FROM projects WHERE tenant_id = ?) AS total_projects,
			(SELECT COUNT(*) FROM tasks WHERE tenant_id = ?) AS total_tasks`,
		id, id, id).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
