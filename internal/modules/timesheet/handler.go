package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/pkg/validator"
)

type Handler struct {
	store TimesheetStore
}

func NewHandler(store TimesheetStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/timesheets")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PATCH("/:id/approval", h.SetApproval)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	entries := h.store.TimeEntries(board.TimeFilter{
		ProjectID: c.Query("projectId"),
		WorkerID:  c.Query("workerId"),
		CompanyID: c.Query("companyId"),
		Date:      c.Query("date"),
	})
	var hours float64
	for _, t := range entries {
		hours += t.Hours
	}
	response.Success(c, http.StatusOK, gin.H{"entries": entries, "totalHours": hours})
}

func (h *Handler) Create(c *gin.Context) {
	var req TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		apierror.Invalid(c, errs)
		return
	}
	t, err := h.store.CreateTimeEntry(c.Request.Context(), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) SetApproval(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		apierror.Invalid(c, errs)
		return
	}
	t, err := h.store.SetTimeEntryApproval(c.Request.Context(), c.Param("id"), *req.Approved)
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteTimeEntry(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
