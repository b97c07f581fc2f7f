package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
)

//go:generate mockery --name TaskService --output ../mocks
type TaskService interface {
	Create(ctx context.Context, projectID string, req dto.CreateTaskRequest) (*domain.Task, error)
	List(ctx context.Context, projectID string, filter domain.TaskFilter) (dto.TaskListData, error)
	UpdateStatus(ctx context.Context, taskID, status string) (*domain.Task, error)
	Update(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, taskID string) error
}

type TaskHandler struct {
	BaseHandler
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create adds a task to a project in the caller's tenant.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	task, err := h.service.Create(h.RequestCtx(c), c.Param("projectId"), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("task created successfully", task))
}

// List returns a project's tasks ordered by priority then due date.
func (h *TaskHandler) List(c *gin.Context) {
	page, limit := pagination(c, 50)
	filter := domain.TaskFilter{
		Status:     c.Query("status"),
		AssignedTo: c.Query("assignedTo"),
		Priority:   c.Query("priority"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	data, err := h.service.List(h.RequestCtx(c), c.Param("projectId"), filter)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(data))
}

// UpdateStatus moves a task on the board.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	task, err := h.service.UpdateStatus(h.RequestCtx(c), c.Param("taskId"), req.Status)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("task status updated successfully", task))
}

// Update applies a partial task patch.
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		return
	}

	task, err := h.service.Update(h.RequestCtx(c), c.Param("taskId"), req)
	if err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("task updated successfully", task))
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("taskId")); err != nil {
		c.JSON(ErrorStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("task deleted successfully", nil))
}
