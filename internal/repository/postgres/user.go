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

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateInTenant inserts a user after checking the tenant's max_users
// ceiling. The tenant row is locked FOR UPDATE for the duration of the
// transaction, so two concurrent creates cannot both observe count = max-1
// and slip past the ceiling.
func (r *UserRepository) CreateInTenant(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenant domain.Tenant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tenant, "id = ?", *user.TenantID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.User{}).
			Where("tenant_id = ?", *user.TenantID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(tenant.MaxUsers) {
			return repository.ErrQuotaExceeded
		}

		return tx.Create(user).Error
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string, tenantID *string) (*domain.User, error) {
	var user domain.User
	if err := scoped(r.db.WithContext(ctx), "users", tenantID).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetActiveByEmail(ctx context.Context, email, subdomain string) (*domain.User, error) {
	db := r.db.WithContext(ctx).Preload("Tenant").Where("users.email = ? AND users.is_active = true", email)
	if subdomain != "" {
		db = db.Joins("JOIN tenants ON tenants.id = users.tenant_id").
			Where("tenants.subdomain = ?", subdomain)
	}

	var user domain.User
	if err := db.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.User{}).Where("tenant_id = ?", filter.TenantID)
	if filter.Search != "" {
		db = db.Where("email ILIKE ? OR full_name ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	if err := paginate(db, filter.Page, filter.Limit).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id string, tenantID *string, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now()
	result := scoped(r.db.WithContext(ctx).Model(&domain.User{}), "users", tenantID).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *UserRepository) Delete(ctx context.Context, id string, tenantID *string) (int64, error) {
	result := scoped(r.db.WithContext(ctx), "users", tenantID).Delete(&domain.User{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
