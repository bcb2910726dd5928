package activity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/domain"
	"opsboard/internal/pkg/response"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type LogSource interface {
	Logs(f board.LogFilter) []domain.LogEntry
}

type Handler struct {
	source LogSource
}

func NewHandler(source LogSource) *Handler {
	return &Handler{source: source}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activity", h.List)
}

// List returns audit entries newest first. ?entity= and ?entityId= narrow the
// result; ?limit= is capped.
func (h *Handler) List(c *gin.Context) {
	limit := defaultLimit
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = min(v, maxLimit)
	}

	entity := c.Query("entity")
	if entity == "equipment" {
		entity = string(domain.EntityEquipment)
	}
	entries := h.source.Logs(board.LogFilter{
		Entity:   domain.EntityKind(entity),
		EntityID: c.Query("entityId"),
		Limit:    limit,
	})
	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}
