package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/pkg/apierror"
	"opsboard/internal/pkg/response"
	"opsboard/internal/pkg/validator"
)

type Handler struct {
	store CompanyStore
}

func NewHandler(store CompanyStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.POST("", h.Create)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"companies": h.store.Companies()})
}

func (h *Handler) Get(c *gin.Context) {
	co, err := h.store.Company(c.Param("id"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, co)
}

func (h *Handler) bind(c *gin.Context) (CompanyRequest, bool) {
	var req CompanyRequest
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
	co, err := h.store.CreateCompany(c.Request.Context(), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, co)
}

func (h *Handler) Update(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	co, err := h.store.UpdateCompany(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, co)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
