package service

import (
	"context"

	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/utils"
)

func strPtr(s string) *string { return &s }

// authedCtx builds a request context the way the JWT middleware would,
// with claims and the tenant scope derived from them.
func authedCtx(userID string, role domain.Role, tenantID *string) context.Context {
	claims := &auth.Claims{
		UserID:   userID,
		Email:    userID + "@example.com",
		Role:     role,
		TenantID: tenantID,
	}
	ctx := context.WithValue(context.Background(), utils.ClaimsKey, claims)
	return context.WithValue(ctx, utils.ScopeKey, utils.Scope{TenantID: tenantID})
}
