package domain

import (
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func IsValidProjectStatus(status string) bool {
	switch ProjectStatus(status) {
	case ProjectStatusActive, ProjectStatusArchived, ProjectStatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID          string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name        string        `gorm:"type:text;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedBy   string        `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant      *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectWithCounts decorates a project row with task aggregates and the
// creator's display name for list responses.
type ProjectWithCounts struct {
	Project
	CreatedByName      string `json:"created_by_name"`
	TaskCount          int64  `json:"task_count"`
	CompletedTaskCount int64  `json:"completed_task_count"`
}

type ProjectFilter struct {
	TenantID string `json:"tenant_id"`
	Status   string `json:"status"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}
