package seed

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

// Context carries the connection and the IDs collected by earlier stages so
// later stages can reference them without package-level state.
type Context struct {
	DB     *gorm.DB
	Logger *logger.Logger

	TenantID   string
	AdminID    string
	UserIDs    []string
	ProjectIDs []string
}

// Run executes all seed stages in dependency order.
func Run(ctx *Context) error {
	stages := []func(*Context) error{
		SeedSuperAdmin,
		SeedTenants,
		SeedUsers,
		SeedProjects,
		SeedTasks,
	}
	for _, stage := range stages {
		if err := stage(ctx); err != nil {
			return err
		}
	}
	return nil
}

// SeedSuperAdmin creates the tenantless platform operator account.
func SeedSuperAdmin(ctx *Context) error {
	hash, err := auth.HashPassword("Admin@123")
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           uuid.New().String(),
		TenantID:     nil,
		Email:        "superadmin@system.com",
		PasswordHash: hash,
		FullName:     "Super Administrator",
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := ctx.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
		return err
	}

	ctx.Logger.Info("seeded super admin", zap.String("email", admin.Email))
	return nil
}

// SeedTenants creates the demo tenant on the pro plan. If it already exists
// its ID is reused so reruns stay idempotent.
func SeedTenants(ctx *Context) error {
	limits := domain.DefaultPlanLimits[domain.PlanPro]
	tenant := domain.Tenant{
		ID:               uuid.New().String(),
		Name:             "Demo Company",
		Subdomain:        "demo",
		Status:           domain.TenantStatusActive,
		SubscriptionPlan: domain.PlanPro,
		MaxUsers:         limits.MaxUsers,
		MaxProjects:      limits.MaxProjects,
	}

	result := ctx.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&tenant)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var existing domain.Tenant
		if err := ctx.DB.Where("subdomain = ?", tenant.Subdomain).First(&existing).Error; err != nil {
			return err
		}
		ctx.TenantID = existing.ID
		ctx.Logger.Info("demo tenant already present", zap.String("tenant_id", ctx.TenantID))
		return nil
	}

	ctx.TenantID = tenant.ID
	if err := auditRow(ctx, nil, "CREATE_TENANT", "tenant", tenant.ID); err != nil {
		return err
	}

	ctx.Logger.Info("seeded demo tenant", zap.String("tenant_id", ctx.TenantID))
	return nil
}

// SeedUsers creates a tenant admin and two members in the demo tenant.
func SeedUsers(ctx *Context) error {
	accounts := []struct {
		email    string
		password string
		name     string
		role     domain.Role
	}{
		{"admin@demo.com", "Demo@123", "Demo Admin", domain.RoleTenantAdmin},
		{"user1@demo.com", "User@123", "Demo User 1", domain.RoleUser},
		{"user2@demo.com", "User@123", "Demo User 2", domain.RoleUser},
	}

	for _, account := range accounts {
		hash, err := auth.HashPassword(account.password)
		if err != nil {
			return err
		}

		user := domain.User{
			ID:           uuid.New().String(),
			TenantID:     &ctx.TenantID,
			Email:        account.email,
			PasswordHash: hash,
			FullName:     account.name,
			Role:         account.role,
			IsActive:     true,
		}
		result := ctx.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var existing domain.User
			if err := ctx.DB.Where("tenant_id = ? AND email = ?", ctx.TenantID, account.email).First(&existing).Error; err != nil {
				return err
			}
			user.ID = existing.ID
		} else {
			var actor *string
			if ctx.AdminID != "" {
				actor = &ctx.AdminID
			}
			if err := auditRow(ctx, actor, domain.ActionCreateUser, "user", user.ID); err != nil {
				return err
			}
		}

		if account.role == domain.RoleTenantAdmin {
			ctx.AdminID = user.ID
		} else {
			ctx.UserIDs = append(ctx.UserIDs, user.ID)
		}
	}

	ctx.Logger.Info("seeded demo users", zap.Int("count", len(accounts)))
	return nil
}

// SeedProjects creates two projects owned by the demo admin.
func SeedProjects(ctx *Context) error {
	projects := []struct {
		name        string
		description string
	}{
		{"Website Redesign", "Complete redesign of company website with modern UI/UX"},
		{"Mobile App Development", "Native mobile application for iOS and Android platforms"},
	}

	for _, p := range projects {
		var count int64
		if err := ctx.DB.Model(&domain.Project{}).
			Where("tenant_id = ? AND name = ?", ctx.TenantID, p.name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			var existing domain.Project
			if err := ctx.DB.Where("tenant_id = ? AND name = ?", ctx.TenantID, p.name).First(&existing).Error; err != nil {
				return err
			}
			ctx.ProjectIDs = append(ctx.ProjectIDs, existing.ID)
			continue
		}

		project := domain.Project{
			ID:          uuid.New().String(),
			TenantID:    ctx.TenantID,
			Name:        p.name,
			Description: p.description,
			Status:      domain.ProjectStatusActive,
			CreatedBy:   ctx.AdminID,
		}
		if err := ctx.DB.Create(&project).Error; err != nil {
			return err
		}
		if err := auditRow(ctx, &ctx.AdminID, domain.ActionCreateProject, "project", project.ID); err != nil {
			return err
		}
		ctx.ProjectIDs = append(ctx.ProjectIDs, project.ID)
	}

	ctx.Logger.Info("seeded demo projects", zap.Int("count", len(ctx.ProjectIDs)))
	return nil
}

// SeedTasks spreads five tasks over both projects with a mix of statuses,
// priorities and due dates.
func SeedTasks(ctx *Context) error {
	if len(ctx.ProjectIDs) < 2 || len(ctx.UserIDs) < 2 {
		ctx.Logger.Warn("skipping task seed, prerequisites missing")
		return nil
	}

	nextWeek := time.Now().AddDate(0, 0, 7)
	twoWeeks := time.Now().AddDate(0, 0, 14)
	tomorrow := time.Now().AddDate(0, 0, 1)

	tasks := []domain.Task{
		{
			ProjectID:   ctx.ProjectIDs[0],
			Title:       "Design Homepage Layout",
			Description: "Create wireframes and mockups for the new homepage design",
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			AssignedTo:  &ctx.UserIDs[0],
			DueDate:     &nextWeek,
		},
		{
			ProjectID:   ctx.ProjectIDs[0],
			Title:       "Implement Navigation Menu",
			Description: "Develop responsive navigation menu with dropdown support",
			Status:      domain.TaskStatusTodo,
			Priority:    domain.TaskPriorityMedium,
			AssignedTo:  &ctx.UserIDs[1],
			DueDate:     &twoWeeks,
		},
		{
			ProjectID:   ctx.ProjectIDs[0],
			Title:       "Content Migration",
			Description: "Move existing content into the new page structure",
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityLow,
			AssignedTo:  &ctx.UserIDs[0],
		},
		{
			ProjectID:   ctx.ProjectIDs[1],
			Title:       "Set Up CI Pipeline",
			Description: "Automated build and test pipeline for both platforms",
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			AssignedTo:  &ctx.UserIDs[1],
			DueDate:     &tomorrow,
		},
		{
			ProjectID:   ctx.ProjectIDs[1],
			Title:       "Push Notification Support",
			Description: "Integrate push notifications on iOS and Android",
			Status:      domain.TaskStatusTodo,
			Priority:    domain.TaskPriorityMedium,
		},
	}

	for i := range tasks {
		task := &tasks[i]

		var count int64
		if err := ctx.DB.Model(&domain.Task{}).
			Where("project_id = ? AND title = ?", task.ProjectID, task.Title).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		task.ID = uuid.New().String()
		task.TenantID = ctx.TenantID
		if err := ctx.DB.Create(task).Error; err != nil {
			return err
		}
		if err := auditRow(ctx, &ctx.AdminID, domain.ActionCreateTask, "task", task.ID); err != nil {
			return err
		}
	}

	ctx.Logger.Info("seeded demo tasks", zap.Int("count", len(tasks)))
	return nil
}

func auditRow(ctx *Context, userID *string, action, entityType, entityID string) error {
	entry := domain.AuditLog{
		ID:         uuid.New().String(),
		TenantID:   &ctx.TenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    "system-seed",
	}
	if entry.TenantID != nil && *entry.TenantID == "" {
		entry.TenantID = nil
	}
	return ctx.DB.Create(&entry).Error
}
