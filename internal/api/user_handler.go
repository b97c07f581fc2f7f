package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	AddToTenant(ctx context.Context, tenantID string, req dto.CreateUserRequest) (dto.UserResponse, error)
	List(ctx context.Context, tenantID string, filter domain.UserFilter) (dto.UserListData, error)
	Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, userID string) error
	GetUserTasks(ctx context.Context, userID string) ([]domain.TaskWithNames, error)
}

type UserHandler struct {
	BaseHandler
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create adds a user to a tenant, subject to the tenant's seat quota.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	user, err := h.service.AddToTenant(h.RequestCtx(c), c.Param("tenantId"), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("user created successfully", user))
}

// List returns a tenant's users, filterable by search text and role.
func (h *UserHandler) List(c *gin.Context) {
	page, limit := pagination(c, 50)
	filter := domain.UserFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Page:   page,
		Limit:  limit,
	}

	data, err := h.service.List(h.RequestCtx(c), c.Param("tenantId"), filter)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}

// Update patches a user. Tenant admins may change role and active flag
// within their tenant; everyone else may only edit their own profile.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	user, err := h.service.Update(h.RequestCtx(c), c.Param("userId"), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("user updated successfully", user))
}

// Delete removes a user from the tenant. Self-deletion is rejected.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("userId")); err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("user deleted successfully", nil))
}

// Tasks returns the tasks assigned to a user, ordered for a personal
// work queue.
func (h *UserHandler) Tasks(c *gin.Context) {
	tasks, err := h.service.GetUserTasks(h.RequestCtx(c), c.Param("userId"))
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"tasks": tasks}))
}
