package dispatch

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/pkg/validator"
)

type Handler struct {
	board DispatchBoard
}

func NewHandler(b DispatchBoard) *Handler {
	return &Handler{board: b}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/board", h.Board)
	rg.GET("/pool/:kind", h.Pool)

	assignments := rg.Group("/assignments")
	{
		assignments.GET("", h.List)
		assignments.POST("", h.Place)
		assignments.DELETE("/:kind/:id", h.Unassign)
	}

	rg.POST("/workers/:id/role-tag", h.CycleRoleTag)
	rg.GET("/undo", h.UndoStatus)
	rg.POST("/undo", h.Undo)
}

func (h *Handler) Board(c *gin.Context) {
	response.Success(c, http.StatusOK, h.board.BoardView())
}

func (h *Handler) Pool(c *gin.Context) {
	kind, err := board.ParseKind(c.Param("kind"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	if kind == board.KindWorker {
		response.Success(c, http.StatusOK, gin.H{"kind": kind, "workers": h.board.UnassignedWorkers()})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"kind": kind, "equipment": h.board.UnassignedEquipment()})
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"assignments": h.board.Assignments()})
}

func (h *Handler) Place(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		apierror.Invalid(c, errs)
		return
	}
	kind, err := board.ParseKind(req.Kind)
	if err != nil {
		apierror.Write(c, err)
		return
	}

	var opts []board.PlaceOption
	if req.Reason != "" {
		opts = append(opts, board.WithRepairReason(req.Reason))
	}
	res, err := h.board.Place(c.Request.Context(), kind, req.EntityID, req.target(), opts...)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Unassign(c *gin.Context) {
	kind, err := board.ParseKind(c.Param("kind"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	res, err := h.board.Unassign(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CycleRoleTag(c *gin.Context) {
	id := c.Param("id")
	tag, err := h.board.CycleRoleTag(c.Request.Context(), id)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workerId": id, "roleTag": tag})
}

func (h *Handler) UndoStatus(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"available": h.board.UndoDepth()})
}

func (h *Handler) Undo(c *gin.Context) {
	if err := h.board.Undo(c.Request.Context()); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"available": h.board.UndoDepth()})
}
