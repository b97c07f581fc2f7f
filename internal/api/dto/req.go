package dto

type RegisterTenantRequest struct {
	TenantName    string `json:"tenantName" binding:"required,min=2,max=100" example:"Acme Inc"`
	Subdomain     string `json:"subdomain" binding:"required,min=2,max=63,lowercase,alphanum" example:"acme"`
	AdminEmail    string `json:"adminEmail" binding:"required,email" example:"admin@acme.com"`
	AdminPassword string `json:"adminPassword" binding:"required,min=8" example:"s3cret-pass"`
	AdminFullName string `json:"adminFullName" binding:"required,min=2,max=100" example:"Ada Admin"`
}

type LoginRequest struct {
	Email           string `json:"email" binding:"required,email" example:"admin@acme.com"`
	Password        string `json:"password" binding:"required" example:"s3cret-pass"`
	TenantSubdomain string `json:"tenantSubdomain" example:"acme"`
}

// UpdateTenantRequest carries a partial tenant patch. Which fields actually
// apply depends on the caller's role allow-list; the rest are dropped.
type UpdateTenantRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=2,max=100"`
	Subdomain        *string `json:"subdomain" binding:"omitempty,min=2,max=63,lowercase,alphanum"`
	Status           *string `json:"status"`
	SubscriptionPlan *string `json:"subscriptionPlan"`
	MaxUsers         *int    `json:"maxUsers" binding:"omitempty,min=0"`
	MaxProjects      *int    `json:"maxProjects" binding:"omitempty,min=0"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,min=2,max=100"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	AssignedTo  *string `json:"assignedTo"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest carries a partial task patch. A non-nil empty AssignedTo
// clears the assignee.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *string `json:"assignedTo"`
	DueDate     *string `json:"dueDate"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
