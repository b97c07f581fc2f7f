package dto

import (
	"github.com/taskhive/taskhive-api/internal/domain"
)

// FromUser converts a user domain model to its response shape. The password
// hash never crosses this boundary.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = FromUser(&users[i])
	}
	return responses
}

func FromTenantSummary(tenant *domain.Tenant) *TenantSummary {
	if tenant == nil {
		return nil
	}
	return &TenantSummary{
		ID:               tenant.ID,
		Name:             tenant.Name,
		Subdomain:        tenant.Subdomain,
		Status:           tenant.Status,
		SubscriptionPlan: tenant.SubscriptionPlan,
		MaxUsers:         tenant.MaxUsers,
		MaxProjects:      tenant.MaxProjects,
	}
}
