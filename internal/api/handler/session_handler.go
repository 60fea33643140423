package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/dto"
)

// CreateSession handles POST /api/v1/auth/session
// Called by the identity provider callback with a verified profile; mirrors
// the user locally and returns a signed session token.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	profile := &domain.ProviderProfile{
		Provider:          req.Provider,
		ProviderAccountID: req.ProviderAccountID,
		Name:              req.Name,
	}

	token, identity, err := h.sessions.EstablishSession(c.Request.Context(), profile)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:  token,
		UserID: identity.UserID,
		Name:   identity.Name,
	})
}
