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

type UserService struct {
	repo   repository.Repository
	audit  *AuditRecorder
	logger *logger.Logger
}

func NewUserService(repo repository.Repository, audit *AuditRecorder, logger *logger.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

// AddToTenant creates a user inside the tenant, subject to the max_users
// ceiling. Tenant admins only, and only for their own tenant; super admins
// are deliberately excluded from per-tenant user management.
func (s *UserService) AddToTenant(ctx context.Context, tenantID string, req dto.CreateUserRequest) (dto.UserResponse, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return dto.UserResponse{}, ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermManageUsers) {
		return dto.UserResponse{}, ErrForbidden
	}
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return dto.UserResponse{}, ErrForbidden
	}
	if !scope.Covers(tenantID) {
		return dto.UserResponse{}, ErrNotFound
	}

	role := domain.RoleUser
	if req.Role != "" {
		if !domain.IsValidRole(req.Role) || domain.Role(req.Role) == domain.RoleSuperAdmin {
			return dto.UserResponse{}, fmt.Errorf("%w: invalid role %q", ErrValidation, req.Role)
		}
		role = domain.Role(req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user := &domain.User{
		TenantID:     &tenantID,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.User().CreateInTenant(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrQuotaExceeded):
			return dto.UserResponse{}, ErrQuotaExceeded
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return dto.UserResponse{}, ErrEmailExistsInTenant
		case errors.Is(err, gorm.ErrRecordNotFound):
			return dto.UserResponse{}, ErrNotFound
		}
		return dto.UserResponse{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("tenant_id", tenantID))
	s.audit.Record(ctx, &tenantID, &claims.UserID, domain.ActionCreateUser, "user", user.ID, "")

	return dto.FromUser(user), nil
}

// List returns the tenant's users, searchable by email/name substring and
// filterable by role.
func (s *UserService) List(ctx context.Context, tenantID string, filter domain.UserFilter) (dto.UserListData, error) {
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return dto.UserListData{}, ErrForbidden
	}
	if !scope.Covers(tenantID) {
		return dto.UserListData{}, ErrNotFound
	}

	filter.TenantID = tenantID
	users, total, err := s.repo.User().List(ctx, filter)
	if err != nil {
		return dto.UserListData{}, err
	}

	return dto.UserListData{
		Users:      dto.FromUsers(users),
		Total:      total,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Update applies a partial user patch. Anyone may rename their own profile;
// tenant admins may additionally change role and active state for users of
// their tenant. Promotion to super admin is not a thing.
func (s *UserService) Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return dto.UserResponse{}, ErrForbidden
	}

	isSelf := claims.UserID == userID
	var allowed map[string]bool
	var tenantScope *string
	switch {
	case claims.Role == domain.RoleTenantAdmin:
		allowed = domain.UserUpdatableFields[domain.RoleTenantAdmin]
		tenantScope = claims.TenantID
	case isSelf:
		allowed = domain.UserUpdatableFields[claims.Role]
	default:
		return dto.UserResponse{}, ErrForbidden
	}

	fields := map[string]any{}
	if req.FullName != nil && allowed["full_name"] {
		fields["full_name"] = *req.FullName
	}
	if req.Role != nil && allowed["role"] {
		if !domain.IsValidRole(*req.Role) || domain.Role(*req.Role) == domain.RoleSuperAdmin {
			return dto.UserResponse{}, fmt.Errorf("%w: invalid role %q", ErrValidation, *req.Role)
		}
		fields["role"] = *req.Role
	}
	if req.IsActive != nil && allowed["is_active"] {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) == 0 {
		return dto.UserResponse{}, ErrNoFieldsToUpdate
	}

	rows, err := s.repo.User().UpdateFields(ctx, userID, tenantScope, fields)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if rows == 0 {
		return dto.UserResponse{}, ErrNotFound
	}

	s.logger.Info("user updated", zap.String("user_id", userID))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionUpdateUser, "user", userID, "")

	user, err := s.repo.User().GetByID(ctx, userID, tenantScope)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.FromUser(user), nil
}

// Delete removes a user from the caller's tenant. Self-deletion is refused;
// owned rows cascade per the store's referential rules.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	claims, err := utils.ClaimsFromContext(ctx)
	if err != nil {
		return ErrForbidden
	}
	if !domain.Can(claims.Role, domain.PermManageUsers) {
		return ErrForbidden
	}
	if claims.UserID == userID {
		return ErrCannotDeleteSelf
	}

	rows, err := s.repo.User().Delete(ctx, userID, claims.TenantID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Info("user deleted", zap.String("user_id", userID))
	s.audit.Record(ctx, claims.TenantID, &claims.UserID, domain.ActionDeleteUser, "user", userID, "")

	return nil
}

// GetUserTasks returns the tasks assigned to a user within the caller's
// scope, ordered by status, then due date with nulls last, then recency.
func (s *UserService) GetUserTasks(ctx context.Context, userID string) ([]domain.TaskWithNames, error) {
	scope, err := utils.ScopeFromContext(ctx)
	if err != nil {
		return nil, ErrForbidden
	}

	return s.repo.Task().ListAssigned(ctx, userID, scope.TenantID)
}
