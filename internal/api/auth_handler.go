package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	RegisterTenant(ctx context.Context, req dto.RegisterTenantRequest) (dto.RegisterTenantData, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginData, error)
	GetCurrentUser(ctx context.Context) (dto.CurrentUserData, error)
}

type AuthHandler struct {
	BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register provisions a tenant with its first admin and returns a session
// token for the admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	data, err := h.service.RegisterTenant(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("tenant registered successfully", data))
}

// Login authenticates a user, optionally narrowed to a tenant subdomain.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	data, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}

// Me returns the authenticated user and their tenant summary.
func (h *AuthHandler) Me(c *gin.Context) {
	data, err := h.service.GetCurrentUser(h.RequestCtx(c))
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}
