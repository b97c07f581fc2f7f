package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
)

//go:generate mockery --name ProjectService --output ../mocks
type ProjectService interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) (dto.ProjectListData, error)
	Update(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, projectID string) error
}

type ProjectHandler struct {
	BaseHandler
	service ProjectService
}

func NewProjectHandler(service ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create adds a project to the caller's tenant, subject to the project
// quota.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	project, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("project created successfully", project))
}

// List returns the tenant's projects with task counts. A super admin must
// name a tenant via the tenantId query parameter.
func (h *ProjectHandler) List(c *gin.Context) {
	page, limit := pagination(c, 20)
	filter := domain.ProjectFilter{
		TenantID: c.Query("tenantId"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	data, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}

// Update applies a partial project patch within the caller's scope.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	project, err := h.service.Update(h.RequestCtx(c), c.Param("projectId"), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("project updated successfully", project))
}

// Delete removes a project and, through the schema, its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("projectId")); err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("project deleted successfully", nil))
}
