// internal/handlers/advisory.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/internal/services"
	"github.com/agriconnect/agriconnect-backend/internal/utils"
)

type AdvisoryHandler struct {
	advisoryService *services.AdvisoryService
}

func NewAdvisoryHandler(advisoryService *services.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryService: advisoryService,
	}
}

// GET /advisory
func (h *AdvisoryHandler) GetAdvisory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	advisory, err := h.advisoryService.GetAdvisory(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "ADVISORY_UNAVAILABLE", i18n.T(lang, i18n.KeyAdvisoryUnavailable), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"advisory": advisory,
	})
}
