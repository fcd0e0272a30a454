package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reelcritic/internal/api/service"
)

type CriticHandler struct {
	criticService service.CriticService
}

func NewCriticHandler(criticService service.CriticService) *CriticHandler {
	return &CriticHandler{criticService: criticService}
}

// RegisterRoutes registers critic routes.
func (h *CriticHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/popular", h.Popular)
}

// Popular returns the critic leaderboard with profiles merged in
// GET /api/critics/popular
func (h *CriticHandler) Popular(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	critics, err := h.criticService.Popular(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, critics)
}
