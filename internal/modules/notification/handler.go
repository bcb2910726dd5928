package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/pkg/response"
)

type RepairSource interface {
	RepairNotices() []board.RepairNotice
}

type Handler struct {
	source RepairSource
}

func NewHandler(source RepairSource) *Handler {
	return &Handler{source: source}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/notifications")
	{
		g.GET("/repairs", h.Repairs)
	}
}

// Repairs lists one notice per unit sitting in the repair shop.
func (h *Handler) Repairs(c *gin.Context) {
	notices := h.source.RepairNotices()
	response.Success(c, http.StatusOK, gin.H{
		"notifications": notices,
		"count":         len(notices),
	})
}
