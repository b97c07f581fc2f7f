package api

import (
	"errors"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/service"
)

// ErrorStatus maps a service error to its HTTP status. Unknown errors map
// to 500 with a generic message so internal detail never reaches callers.
func ErrorStatus(err error) (int, dto.Error) {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewError(err.Error())
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrTenantSuspended),
		errors.Is(err, service.ErrQuotaExceeded):
		return http.StatusForbidden, dto.NewError(err.Error())
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, dto.NewError(err.Error())
	case errors.Is(err, service.ErrSubdomainTaken),
		errors.Is(err, service.ErrEmailExistsInTenant):
		return http.StatusConflict, dto.NewError(err.Error())
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrNoFieldsToUpdate),
		errors.Is(err, service.ErrProjectNotInTenant),
		errors.Is(err, service.ErrAssigneeNotInTenant),
		errors.Is(err, service.ErrCannotDeleteSelf):
		return http.StatusBadRequest, dto.NewError(err.Error())
	default:
		return http.StatusInternalServerError, dto.NewError("internal server error")
	}
}
