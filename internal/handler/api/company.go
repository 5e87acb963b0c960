package api

import (
	"errors"
	"net/http"

	"company-registry/internal/domain/company"
	reqdto "company-registry/internal/handler/dto/request"
	resdto "company-registry/internal/handler/dto/response"
	"company-registry/internal/handler/middleware"
	"company-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUseCase usecase.CompanyUseCase
}

func NewCompanyHandler(companyUseCase usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: companyUseCase,
	}
}

// @Summary Create company
// @Description Create a company owned by the authenticated user
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCompanyRequest true "Company request"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.companyUseCase.Create(c.Request.Context(), req.ToInput(), ident)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCompanyView(view))
}

// @Summary List companies
// @Description List the companies owned by the authenticated user
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CompanyResponse
// @Failure 401 {object} map[string]string
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.companyUseCase.List(c.Request.Context(), ident)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyViews(views))
}

// @Summary Get company
// @Description Get a company by ID if owned by the authenticated user
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid company ID format",
		})
		return
	}

	view, err := h.companyUseCase.Get(c.Request.Context(), id, ident)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Update company
// @Description Update a company if owned by the authenticated user
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param request body reqdto.UpdateCompanyRequest true "Update request"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /companies/{id} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid company ID format",
		})
		return
	}

	var req reqdto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.companyUseCase.Update(c.Request.Context(), id, req.ToInput(), ident)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Delete company
// @Description Delete a company if owned by the authenticated user
// @Tags companies
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid company ID format",
		})
		return
	}

	if err := h.companyUseCase.Delete(c.Request.Context(), id, ident); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CompanyHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Company not found",
		})
	case errors.Is(err, usecase.ErrCompanyNameTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Company already exists",
		})
	case errors.Is(err, company.ErrInvalidName), errors.Is(err, company.ErrInvalidCNPJ):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
