package propertytype

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// PropertyTypeHandler handles REST API requests for the property type resource.
type PropertyTypeHandler struct {
	svc domain.PropertyTypeService
}

// NewPropertyTypeHandler creates a new PropertyTypeHandler with the given service.
func NewPropertyTypeHandler(svc domain.PropertyTypeService) *PropertyTypeHandler {
	return &PropertyTypeHandler{svc: svc}
}

// Create handles POST /api/v1/property-types.
func (h *PropertyTypeHandler) Create(c *gin.Context) {
	var req PropertyTypeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	pt, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, pt)
}

// Get handles GET /api/v1/property-types/:id.
func (h *PropertyTypeHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	pt, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, pt)
}

// List handles GET /api/v1/property-types.
func (h *PropertyTypeHandler) List(c *gin.Context) {
	params := query.ParseListParams(c, propertyTypeSchema.DefaultLimit)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filters handles GET /api/v1/property-types/filters.
func (h *PropertyTypeHandler) Filters(c *gin.Context) {
	pkg.Success(c, propertyTypeSchema.Describe())
}

// Update handles PUT /api/v1/property-types/:id.
func (h *PropertyTypeHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req PropertyTypeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	pt, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, pt)
}

// Delete handles DELETE /api/v1/property-types/:id.
func (h *PropertyTypeHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "property type deleted")
}

// Restore handles PATCH /api/v1/property-types/:id/restore.
func (h *PropertyTypeHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	pt, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, pt)
}
