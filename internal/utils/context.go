package utils

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive-api/internal/auth"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	ScopeKey  ContextKey = "tenant_scope"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoScopeInContext  = errors.New("no tenant scope found in context")
)

// Scope is the effective tenant filter for a request. A nil TenantID means
// unscoped access (super admin); otherwise every data access is restricted
// to the named tenant.
type Scope struct {
	TenantID *string
}

// Unscoped reports whether the scope carries no tenant filter.
func (s Scope) Unscoped() bool {
	return s.TenantID == nil
}

// Covers reports whether the scope permits access to rows of the given tenant.
func (s Scope) Covers(tenantID string) bool {
	return s.TenantID == nil || *s.TenantID == tenantID
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

func ScopeFromContext(ctx context.Context) (Scope, error) {
	scope, ok := ctx.Value(ScopeKey).(Scope)
	if !ok {
		return Scope{}, ErrNoScopeInContext
	}
	return scope, nil
}
