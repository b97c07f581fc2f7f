package domain

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Any status may be set from any status; the board is free-drag and no
// transition adjacency is enforced.
func IsValidTaskStatus(status string) bool {
	switch TaskStatus(status) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func IsValidTaskPriority(priority string) bool {
	switch TaskPriority(priority) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ProjectID   string       `gorm:"type:uuid;not null;index" json:"project_id"`
	TenantID    string       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:text;not null;default:'todo'" json:"status"`
	Priority    TaskPriority `gorm:"type:text;not null;default:'medium'" json:"priority"`
	AssignedTo  *string      `gorm:"type:uuid" json:"assigned_to"`
	DueDate     *time.Time   `gorm:"type:timestamp with time zone" json:"due_date"`
	CreatedAt   time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Project     *Project     `gorm:"foreignKey:ProjectID" json:"-"`
	Assignee    *User        `gorm:"foreignKey:AssignedTo" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskWithNames decorates a task with the assignee and project display names.
type TaskWithNames struct {
	Task
	AssignedToName string `json:"assigned_to_name,omitempty"`
	ProjectName    string `json:"project_name,omitempty"`
}

type TaskFilter struct {
	ProjectID  string `json:"project_id"`
	TenantID   string `json:"tenant_id"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
	Priority   string `json:"priority"`
	Search     string `json:"search"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}
