package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/middleware"
	"github.com/taskhive/taskhive-api/internal/service"
)

type Server struct {
	auth       *AuthHandler
	tenant     *TenantHandler
	user       *UserHandler
	project    *ProjectHandler
	task       *TaskHandler
	dashboard  *DashboardHandler
	auditLog   *AuditLogHandler
	authMW     *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	config     *config.Config
}

func NewServer(
	authService *service.AuthService,
	tenantService *service.TenantService,
	userService *service.UserService,
	projectService *service.ProjectService,
	taskService *service.TaskService,
	dashboardService *service.DashboardService,
	auditLogService *service.AuditLogService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	config *config.Config,
) *Server {
	return &Server{
		auth:       NewAuthHandler(authService),
		tenant:     NewTenantHandler(tenantService),
		user:       NewUserHandler(userService),
		project:    NewProjectHandler(projectService),
		task:       NewTaskHandler(taskService),
		dashboard:  NewDashboardHandler(dashboardService),
		auditLog:   NewAuditLogHandler(auditLogService),
		authMW:     authMW,
		rateLimit:  rateLimit,
		validation: validation,
		config:     config,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024))
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.auth.Register)
		auth.POST("/login", s.auth.Login)
		auth.GET("/me", s.authMW.JWTAuth(), s.auth.Me)
	}

	authed := api.Group("", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
	{
		tenants := authed.Group("/tenants")
		{
			tenants.GET("", s.authMW.RequireRole(domain.RoleSuperAdmin), s.tenant.List)
			tenants.GET("/:tenantId", s.tenant.Get)
			tenants.PUT("/:tenantId", s.tenant.Update)
			tenants.POST("/:tenantId/users", s.authMW.RequireRole(domain.RoleTenantAdmin), s.user.Create)
			tenants.GET("/:tenantId/users", s.user.List)
		}

		users := authed.Group("/users")
		{
			users.PUT("/:userId", s.user.Update)
			users.DELETE("/:userId", s.authMW.RequireRole(domain.RoleTenantAdmin), s.user.Delete)
			users.GET("/:userId/tasks", s.user.Tasks)
		}

		projects := authed.Group("/projects")
		{
			projects.POST("", s.project.Create)
			projects.GET("", s.project.List)
			projects.PUT("/:projectId", s.project.Update)
			projects.DELETE("/:projectId", s.authMW.RequireRole(domain.RoleTenantAdmin, domain.RoleSuperAdmin), s.project.Delete)
			projects.POST("/:projectId/tasks", s.task.Create)
			projects.GET("/:projectId/tasks", s.task.List)
		}

		tasks := authed.Group("/tasks")
		{
			tasks.PATCH("/:taskId/status", s.task.UpdateStatus)
			tasks.PUT("/:taskId", s.task.Update)
			tasks.DELETE("/:taskId", s.task.Delete)
		}

		authed.GET("/dashboard/stats", s.dashboard.Stats)
		authed.GET("/audit-logs", s.authMW.RequireRole(domain.RoleTenantAdmin, domain.RoleSuperAdmin), s.auditLog.List)

		admin := authed.Group("/admin", s.authMW.RequireRole(domain.RoleSuperAdmin))
		{
			admin.GET("/stats", s.dashboard.SystemStats)
			admin.GET("/tenants", s.tenant.List)
		}
	}
}
