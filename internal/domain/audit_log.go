package domain

import (
	"time"
)

// Audit actions recorded as a side effect of mutating operations.
const (
	ActionTenantRegistered   = "TENANT_REGISTERED"
	ActionLoginSuccess       = "LOGIN_SUCCESS"
	ActionLoginFailed        = "LOGIN_FAILED"
	ActionUpdateTenant       = "UPDATE_TENANT"
	ActionSubscriptionChange = "SUBSCRIPTION_CHANGE"
	ActionCreateUser         = "CREATE_USER"
	ActionUpdateUser         = "UPDATE_USER"
	ActionDeleteUser         = "DELETE_USER"
	ActionCreateProject      = "CREATE_PROJECT"
	ActionUpdateProject      = "UPDATE_PROJECT"
	ActionDeleteProject      = "DELETE_PROJECT"
	ActionCreateTask         = "CREATE_TASK"
	ActionUpdateTask         = "UPDATE_TASK"
	ActionUpdateTaskStatus   = "UPDATE_TASK_STATUS"
	ActionDeleteTask         = "DELETE_TASK"
)

// AuditLog is an append-only record of a mutating action. Rows are never
// updated or deleted; a nil TenantID marks a system-level action and a nil
// UserID an anonymous actor.
type AuditLog struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID   *string   `gorm:"type:uuid;index" json:"tenant_id"`
	UserID     *string   `gorm:"type:uuid" json:"user_id"`
	Action     string    `gorm:"type:text;not null" json:"action"`
	EntityType string    `gorm:"type:text;not null" json:"entity_type"`
	EntityID   string    `gorm:"type:text" json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

type AuditLogFilter struct {
	TenantID   string `json:"tenant_id"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}
