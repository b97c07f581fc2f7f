package domain

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     *string   `gorm:"type:uuid;uniqueIndex:idx_users_tenant_email" json:"tenant_id"`
	Email        string    `gorm:"type:text;not null;uniqueIndex:idx_users_tenant_email" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	FullName     string    `gorm:"type:text;not null" json:"full_name"`
	Role         Role      `gorm:"type:text;not null;default:'user'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// InTenant reports whether the user belongs to the given tenant.
// Super admins carry no tenant and never match.
func (u *User) InTenant(tenantID string) bool {
	return u.TenantID != nil && *u.TenantID == tenantID
}

type UserFilter struct {
	TenantID string `json:"tenant_id"`
	Search   string `json:"search"`
	Role     string `json:"role"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}
