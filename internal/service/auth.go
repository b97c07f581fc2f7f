package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/utils"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

type AuthService struct {
	repo   repository.Repository
	tokens *auth.TokenService
	audit  *AuditRecorder
	logger *logger.Logger
}

func NewAuthService(repo repository.Repository, tokens *auth.TokenService, audit *AuditRecorder, logger *logger.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
		logger: logger,
	}
}

// RegisterTenant creates a tenant together with its first admin user in one
// transaction. The subdomain pre-check gives a friendly error on the common
// path; the unique index remains the authoritative guard under races.
func (s *AuthService) RegisterTenant(ctx context.Context, req dto.RegisterTenantRequest) (dto.RegisterTenantData, error) {
	if _, err := s.repo.Tenant().GetBySubdomain(ctx, req.Subdomain); err == nil {
		return dto.RegisterTenantData{}, ErrSubdomainTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.RegisterTenantData{}, err
	}

	hash, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return dto.RegisterTenantData{}, err
	}

	limits := domain.DefaultPlanLimits[domain.PlanFree]
	tenant := &domain.Tenant{
		Name:             req.TenantName,
		Subdomain:        req.Subdomain,
		Status:           domain.TenantStatusActive,
		SubscriptionPlan: domain.PlanFree,
		MaxUsers:         limits.MaxUsers,
		MaxProjects:      limits.MaxProjects,
	}
	admin := &domain.User{
		Email:        req.AdminEmail,
		PasswordHash: hash,
		FullName:     req.AdminFullName,
		Role:         domain.RoleTenantAdmin,
		IsActive:     true,
	}

	if err := s.repo.Tenant().RegisterTenant(ctx, tenant, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.RegisterTenantData{}, ErrSubdomainTaken
		}
		return dto.RegisterTenantData{}, err
	}

	s.logger.Info("tenant registered",
		zap.String("tenant_id", tenant.ID),
		zap.String("subdomain", tenant.Subdomain))
	s.audit.Record(ctx, &tenant.ID, &admin.ID, domain.ActionTenantRegistered, "tenant", tenant.ID, "")

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return dto.RegisterTenantData{}, err
	}

	return dto.RegisterTenantData{
		TenantID:  tenant.ID,
		Subdomain: tenant.Subdomain,
		User:      dto.FromUser(admin),
		Token:     token,
	}, nil
}

// Login authenticates a user, optionally narrowed to a tenant subdomain.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginData, error) {
	user, err := s.repo.User().GetActiveByEmail(ctx, req.Email, req.TenantSubdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginData{}, ErrInvalidCredentials
		}
		return dto.LoginData{}, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		s.audit.Record(ctx, user.TenantID, &user.ID, domain.ActionLoginFailed, "user", user.ID, "invalid password")
		return dto.LoginData{}, ErrInvalidCredentials
	}

	if user.Role != domain.RoleSuperAdmin && user.Tenant != nil &&
		user.Tenant.Status == domain.TenantStatusSuspended {
		s.audit.Record(ctx, user.TenantID, &user.ID, domain.ActionLoginFailed, "user", user.ID, "tenant suspended")
		return dto.LoginData{}, ErrTenantSuspended
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return dto.LoginData{}, err
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))
	s.audit.Record(ctx, user.TenantID, &user.ID, domain.ActionLoginSuccess, "user", user.ID, "")

	return dto.LoginData{
		User:      dto.FromUser(user),
		Token:     token,
		ExpiresIn: int(s.tokens.Expiry().Seconds()),
	}, nil
}

// GetCurrentUser returns the caller's profile together with its tenant
// summary; super admins carry no tenant.
func (s *AuthService) GetCurrentUser(ctx context.Context) (dto.CurrentUserData, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return dto.CurrentUserData{}, fmt.Errorf("%w: %v", ErrForbidden, err)
	}

	user, err := s.repo.User().GetByID(ctx, claims.UserID, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CurrentUserData{}, ErrNotFound
		}
		return dto.CurrentUserData{}, err
	}

	var tenant *domain.Tenant
	if user.TenantID != nil {
		tenant, err = s.repo.Tenant().GetByID(ctx, *user.TenantID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CurrentUserData{}, err
		}
	}

	return dto.CurrentUserData{
		UserResponse: dto.FromUser(user),
		Tenant:       dto.FromTenantSummary(tenant),
	}, nil
}
