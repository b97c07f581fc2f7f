package repository

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive-api/internal/domain"
)

// ErrQuotaExceeded is returned by quota-checked creates when the tenant has
// reached its plan ceiling for the resource. The check runs inside the same
// transaction as the insert, serialized by a lock on the tenant row.
var ErrQuotaExceeded = errors.New("tenant quota exceeded")

// Tenant scoping convention: methods taking a tenantID *string apply
// "tenant_id = ?" when it is non-nil and no filter at all when it is nil
// (super-admin access). Scoped mutations report affected rows so callers can
// translate a miss into NotFound without leaking existence.

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	// RegisterTenant creates the tenant and its first admin user in one
	// transaction. The unique subdomain index is the authoritative guard;
	// a collision surfaces as gorm.ErrDuplicatedKey.
	RegisterTenant(ctx context.Context, tenant *domain.Tenant, admin *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
	ListWithStats(ctx context.Context, filter domain.TenantFilter) ([]domain.TenantWithStats, int64, error)
	Stats(ctx context.Context, id string) (*domain.TenantStats, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	// CreateInTenant inserts a user after a quota check against the tenant's
	// max_users ceiling, all within one transaction.
	CreateInTenant(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string, tenantID *string) (*domain.User, error)
	// GetActiveByEmail looks up an active user for login, optionally narrowed
	// to a tenant subdomain. The tenant association is preloaded.
	GetActiveByEmail(ctx context.Context, email, subdomain string) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error)
	UpdateFields(ctx context.Context, id string, tenantID *string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string, tenantID *string) (int64, error)
}

//go:generate mockery --name ProjectRepository --output ../mocks
type ProjectRepository interface {
	// Create inserts a project after a quota check against the tenant's
	// max_projects ceiling, all within one transaction.
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string, tenantID *string) (*domain.Project, error)
	ListWithCounts(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithCounts, int64, error)
	UpdateFields(ctx context.Context, id string, tenantID *string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string, tenantID *string) (int64, error)
}

//go:generate mockery --name TaskRepository --output ../mocks
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string, tenantID *string) (*domain.Task, error)
	ListByProject(ctx context.Context, filter domain.TaskFilter, tenantID *string) ([]domain.TaskWithNames, int64, error)
	ListAssigned(ctx context.Context, userID string, tenantID *string) ([]domain.TaskWithNames, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus, tenantID *string) (int64, error)
	UpdateFields(ctx context.Context, id string, tenantID *string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string, tenantID *string) (int64, error)
}

//go:generate mockery --name AuditLogRepository --output ../mocks
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditLogFilter, tenantID *string) ([]domain.AuditLog, int64, error)
}

//go:generate mockery --name StatsRepository --output ../mocks
type StatsRepository interface {
	TenantDashboard(ctx context.Context, tenantID string) (*domain.DashboardStats, error)
	System(ctx context.Context) (*domain.SystemStats, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	User() UserRepository
	Project() ProjectRepository
	Task() TaskRepository
	AuditLog() AuditLogRepository
	Stats() StatsRepository
}
