package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/pkg/validator"
)

type Handler struct {
	store ProjectStore
}

func NewHandler(store ProjectStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.List)
		projects.POST("", h.Create)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}

// List returns normal projects only; system projects are reachable by id.
func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"projects": h.store.Projects()})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.store.Project(c.Param("id"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) bind(c *gin.Context) (ProjectRequest, bool) {
	var req ProjectRequest
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
	p, err := h.store.CreateProject(c.Request.Context(), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	p, err := h.store.UpdateProject(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
