package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// TenantHandler handles REST API requests for the tenant resource.
type TenantHandler struct {
	svc domain.TenantService
}

// NewTenantHandler creates a new TenantHandler with the given service.
func NewTenantHandler(svc domain.TenantService) *TenantHandler {
	return &TenantHandler{svc: svc}
}

// Create handles POST /api/v1/tenants.
func (h *TenantHandler) Create(c *gin.Context) {
	var req TenantRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tenant, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, tenant)
}

// Get handles GET /api/v1/tenants/:id.
func (h *TenantHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	tenant, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tenant)
}

// List handles GET /api/v1/tenants.
func (h *TenantHandler) List(c *gin.Context) {
	params := query.ParseListParams(c, tenantSchema.DefaultLimit)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filters handles GET /api/v1/tenants/filters.
func (h *TenantHandler) Filters(c *gin.Context) {
	pkg.Success(c, tenantSchema.Describe())
}

// Suggestions handles GET /api/v1/tenants/suggestions/contacts.
func (h *TenantHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.svc.ContactSuggestions(c.Request.Context(), c.Query("search"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, suggestions)
}

// Update handles PUT /api/v1/tenants/:id.
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req TenantRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tenant, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tenant)
}

// Delete handles DELETE /api/v1/tenants/:id.
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "tenant deleted")
}

// Restore handles PATCH /api/v1/tenants/:id/restore.
func (h *TenantHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	tenant, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tenant)
}
