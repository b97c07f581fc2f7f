package service

import "errors"

var (
	// Authentication
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTenantSuspended    = errors.New("account suspended/inactive")

	// Authorization. Entities outside a caller's tenant scope surface as
	// ErrNotFound, never ErrForbidden, so their existence is not leaked.
	ErrForbidden = errors.New("insufficient permissions")
	ErrNotFound  = errors.New("not found")

	// Uniqueness
	ErrSubdomainTaken      = errors.New("subdomain already exists")
	ErrEmailExistsInTenant = errors.New("email already exists in this tenant")

	// Quota
	ErrQuotaExceeded = errors.New("subscription limit reached")

	// Validation
	ErrValidation       = errors.New("validation failed")
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// Cross-tenant references
	ErrProjectNotInTenant  = errors.New("project does not belong to user's tenant")
	ErrAssigneeNotInTenant = errors.New("assigned user does not belong to same tenant")

	// User management
	ErrCannotDeleteSelf = errors.New("cannot delete self")
)
