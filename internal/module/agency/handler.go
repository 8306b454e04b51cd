package agency

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// AgencyHandler handles REST API requests for the agency resource.
type AgencyHandler struct {
	svc domain.AgencyService
}

// NewAgencyHandler creates a new AgencyHandler with the given service.
func NewAgencyHandler(svc domain.AgencyService) *AgencyHandler {
	return &AgencyHandler{svc: svc}
}

// Create handles POST /api/v1/agencies.
func (h *AgencyHandler) Create(c *gin.Context) {
	var req AgencyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	agency, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, agency)
}

// Get handles GET /api/v1/agencies/:id.
func (h *AgencyHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	agency, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, agency)
}

// List handles GET /api/v1/agencies.
func (h *AgencyHandler) List(c *gin.Context) {
	params := query.ParseListParams(c, agencySchema.DefaultLimit)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filters handles GET /api/v1/agencies/filters.
func (h *AgencyHandler) Filters(c *gin.Context) {
	pkg.Success(c, agencySchema.Describe())
}

// Update handles PUT /api/v1/agencies/:id.
func (h *AgencyHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req AgencyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	agency, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, agency)
}

// Delete handles DELETE /api/v1/agencies/:id.
func (h *AgencyHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "agency deleted")
}

// Restore handles PATCH /api/v1/agencies/:id/restore.
func (h *AgencyHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	agency, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, agency)
}
