package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusInactive  TenantStatus = "inactive"
)

type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// PlanLimits holds the resource ceilings granted by a subscription plan.
type PlanLimits struct {
	MaxUsers    int
	MaxProjects int
}

// DefaultPlanLimits maps each plan to the ceilings applied at registration.
var DefaultPlanLimits = map[SubscriptionPlan]PlanLimits{
	PlanFree:       {MaxUsers: 5, MaxProjects: 3},
	PlanPro:        {MaxUsers: 25, MaxProjects: 15},
	PlanEnterprise: {MaxUsers: 100, MaxProjects: 50},
}

// PlanRateLimits maps each plan to the per-minute request ceiling used by
// the tenant rate limiter.
var PlanRateLimits = map[SubscriptionPlan]int{
	PlanFree:       60,
	PlanPro:        300,
	PlanEnterprise: 1200,
}

func IsValidTenantStatus(status string) bool {
	switch TenantStatus(status) {
	case TenantStatusActive, TenantStatusSuspended, TenantStatusInactive:
		return true
	}
	return false
}

func IsValidPlan(plan string) bool {
	_, ok := DefaultPlanLimits[SubscriptionPlan(plan)]
	return ok
}

type Tenant struct {
	ID               string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name             string           `gorm:"type:text;not null" json:"name"`
	Subdomain        string           `gorm:"type:text;not null;uniqueIndex" json:"subdomain"`
	Status           TenantStatus     `gorm:"type:text;not null;default:'active'" json:"status"`
	SubscriptionPlan SubscriptionPlan `gorm:"type:text;not null;default:'free'" json:"subscription_plan"`
	MaxUsers         int              `gorm:"not null;default:5" json:"max_users"`
	MaxProjects      int              `gorm:"not null;default:3" json:"max_projects"`
	CreatedAt        time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// TenantStats carries live aggregate counts used to decorate tenant responses.
type TenantStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalProjects int64 `json:"total_projects"`
	TotalTasks    int64 `json:"total_tasks"`
}

// TenantWithStats is a tenant row decorated with live aggregate counts,
// scanned from the roster query's flat columns.
type TenantWithStats struct {
	Tenant
	TotalUsers    int64 `gorm:"column:total_users" json:"total_users"`
	TotalProjects int64 `gorm:"column:total_projects" json:"total_projects"`
	TotalTasks    int64 `gorm:"column:total_tasks" json:"total_tasks"`
}

type TenantFilter struct {
	Status           string `json:"status"`
	SubscriptionPlan string `json:"subscription_plan"`
	Page             int    `json:"page"`
	Limit            int    `json:"limit"`
}
