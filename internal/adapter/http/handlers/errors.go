package handlers

import (
	"errors"
	"net/http"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// mapDomainError translates the entity error kinds into API errors. The
// offending field or document path, when known, is passed through.
func mapDomainError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		appErr = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		appErr = pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		appErr = pkg.NewDomainErrorSimple("CONFLICT", "Resource already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyInRemittance):
		appErr = pkg.NewDomainErrorSimple("ALREADY_IN_REMITTANCE", "Quote already belongs to a remittance", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		appErr = pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Operation not allowed in the current state", http.StatusConflict)
	case errors.Is(err, entities.ErrNoActiveMandate):
		appErr = pkg.NewDomainErrorSimple("NO_ACTIVE_MANDATE", "Member has no active mandate", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrMandateExhausted):
		appErr = pkg.NewDomainErrorSimple("MANDATE_EXHAUSTED", "Mandate admits no further collections", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidDocument):
		appErr = pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Invalid pain.008 document", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	var de *entities.Error
	if errors.As(err, &de) {
		field := de.Field
		if field == "" {
			field = de.ID
		}
		if field != "" {
			appErr = appErr.WithField(field)
		}
	}
	appErr.Err = err
	return appErr
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
