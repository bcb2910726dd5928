package equipment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/domain"
	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/pkg/validator"
)

type Handler struct {
	store EquipmentStore
}

func NewHandler(store EquipmentStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	equipment := rg.Group("/equipment")
	{
		equipment.GET("", h.List)
		equipment.POST("", h.Create)
		equipment.GET("/:id", h.Get)
		equipment.GET("/:id/repairs", h.Repairs)
		equipment.PUT("/:id", h.Update)
		equipment.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"equipment": h.store.EquipmentList()})
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.store.Equipment(c.Param("id"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// Repairs returns the repair log, oldest first.
func (h *Handler) Repairs(c *gin.Context) {
	e, err := h.store.Equipment(c.Param("id"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	repairs := e.RepairHistory
	if repairs == nil {
		repairs = []domain.RepairLog{}
	}
	_, open := e.OpenRepair()
	response.Success(c, http.StatusOK, gin.H{
		"equipmentId": e.ID,
		"label":       e.Label(),
		"inRepair":    open,
		"repairs":     repairs,
	})
}

func (h *Handler) bind(c *gin.Context) (EquipmentRequest, bool) {
	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c)
		return req, false
	}
	if errs := validator.Validate(req); errs != nil {
		apierror.Invalid(c, errs)
		return req, false
	}
	return req, true
}

func (h *Handler) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	e, err := h.store.CreateEquipment(c.Request.Context(), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	e, err := h.store.UpdateEquipment(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
