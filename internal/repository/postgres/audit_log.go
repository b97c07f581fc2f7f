package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/domain"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditLogRepository) List(ctx context.Context, filter domain.AuditLogFilter, tenantID *string) ([]domain.AuditLog, int64, error) {
	db := scoped(r.db.WithContext(ctx).Model(&domain.AuditLog{}), "audit_logs", tenantID)
	if tenantID == nil && filter.TenantID != "" {
		// Unscoped callers may narrow the trail to one tenant.
		db = db.Where("audit_logs.tenant_id = ?", filter.TenantID)
	}
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		db = db.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		db = db.Where("entity_type = ?", filter.EntityType)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []domain.AuditLog
	if err := paginate(db, filter.Page, filter.Limit).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
