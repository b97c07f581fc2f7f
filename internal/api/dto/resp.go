package dto

import (
	"time"

	"github.com/taskhive/taskhive-api/internal/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKWithMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
}

func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Limit:       limit,
		Total:       total,
	}
}

type UserResponse struct {
	ID        string      `json:"id"`
	TenantID  *string     `json:"tenant_id"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type TenantSummary struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Subdomain        string                  `json:"subdomain"`
	Status           domain.TenantStatus     `json:"status"`
	SubscriptionPlan domain.SubscriptionPlan `json:"subscription_plan"`
	MaxUsers         int                     `json:"max_users"`
	MaxProjects      int                     `json:"max_projects"`
}

type RegisterTenantData struct {
	TenantID  string       `json:"tenantId"`
	Subdomain string       `json:"subdomain"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
}

type LoginData struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"`
}

type CurrentUserData struct {
	UserResponse
	Tenant *TenantSummary `json:"tenant"`
}

type TenantDetailData struct {
	domain.Tenant
	Stats domain.TenantStats `json:"stats"`
}

type TenantListData struct {
	Tenants    []domain.TenantWithStats `json:"tenants"`
	Total      int64                    `json:"total"`
	Pagination Pagination               `json:"pagination"`
}

type UserListData struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Pagination Pagination     `json:"pagination"`
}

type ProjectListData struct {
	Projects   []domain.ProjectWithCounts `json:"projects"`
	Total      int64                      `json:"total"`
	Pagination Pagination                 `json:"pagination"`
}

type TaskListData struct {
	Tasks      []domain.TaskWithNames `json:"tasks"`
	Total      int64                  `json:"total"`
	Pagination Pagination             `json:"pagination"`
}

type AuditLogListData struct {
	Logs       []domain.AuditLog `json:"logs"`
	Total      int64             `json:"total"`
	Pagination Pagination        `json:"pagination"`
}
