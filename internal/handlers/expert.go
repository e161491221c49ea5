// internal/handlers/expert.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/internal/i18n"
	"github.com/agriconnect/agriconnect-backend/internal/services"
	"github.com/agriconnect/agriconnect-backend/internal/utils"
)

type ExpertHandler struct {
	expertService *services.ExpertService
}

func NewExpertHandler(expertService *services.ExpertService) *ExpertHandler {
	return &ExpertHandler{
		expertService: expertService,
	}
}

// GET /experts
func (h *ExpertHandler) GetExperts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"experts": h.expertService.ListExperts(),
	})
}

// POST /experts/:id/sessions
func (h *ExpertHandler) StartSession(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	session, greeting, err := h.expertService.StartSession(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"session":  session,
		"greeting": greeting,
	})
}

// POST /chat/sessions/:id/messages
func (h *ExpertHandler) SendMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid session ID", nil)
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "message"), err.Error())
		return
	}

	reply, err := h.expertService.SendMessage(sessionID, userID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reply": reply,
	})
}

// GET /chat/sessions/:id
func (h *ExpertHandler) GetSessionHistory(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid session ID", nil)
		return
	}

	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	session, err := h.expertService.SessionHistory(sessionID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session": session,
	})
}
