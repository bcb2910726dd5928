package worker

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/pkg/validator"
)

type Handler struct {
	store WorkerStore
}

func NewHandler(store WorkerStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	workers := rg.Group("/workers")
	{
		workers.GET("", h.List)
		workers.POST("", h.Create)
		workers.GET("/:id", h.Get)
		workers.PUT("/:id", h.Update)
		workers.DELETE("/:id", h.Delete)
	}
}

// List supports ?companyId= to scope the roster to one company.
func (h *Handler) List(c *gin.Context) {
	all := h.store.Workers()
	if cid := c.Query("companyId"); cid != "" {
		scoped := all[:0]
		for _, w := range all {
			if w.CompanyID == cid {
				scoped = append(scoped, w)
			}
		}
		all = scoped
	}
	response.Success(c, http.StatusOK, gin.H{"workers": all})
}

func (h *Handler) Get(c *gin.Context) {
	w, err := h.store.Worker(c.Param("id"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, w)
}

func (h *Handler) bind(c *gin.Context) (WorkerRequest, bool) {
	var req WorkerRequest
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
	w, err := h.store.CreateWorker(c.Request.Context(), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, w)
}

func (h *Handler) Update(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	w, err := h.store.UpdateWorker(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, w)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteWorker(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
