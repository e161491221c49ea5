// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/internal/services"
	"github.com/agriconnect/agriconnect-backend/internal/utils"
)

// respondServiceError maps the service error kinds onto HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, services.ErrOrderNotFound):
		utils.NotFoundResponse(c, "order")
	case errors.Is(err, services.ErrExpertNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyChatExpertNotFound), nil)
	case errors.Is(err, services.ErrSessionNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyChatSessionNotFound), nil)
	case errors.Is(err, services.ErrInsufficientStock):
		utils.ConflictResponse(c, "INSUFFICIENT_STOCK", i18n.T(lang, i18n.KeyProductOutOfStock))
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ConflictResponse(c, "INVALID_TRANSITION", i18n.T(lang, i18n.KeyOrderInvalidTransition))
	case errors.Is(err, services.ErrNotOwner):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrUserExists):
		utils.ConflictResponse(c, "CONFLICT", i18n.T(lang, i18n.KeyAuthUserExists))
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
