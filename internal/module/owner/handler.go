package owner

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// OwnerHandler handles REST API requests for the owner resource.
type OwnerHandler struct {
	svc domain.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler with the given service.
func NewOwnerHandler(svc domain.OwnerService) *OwnerHandler {
	return &OwnerHandler{svc: svc}
}

// Create handles POST /api/v1/owners.
func (h *OwnerHandler) Create(c *gin.Context) {
	var req OwnerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	owner, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, owner)
}

// Get handles GET /api/v1/owners/:id.
func (h *OwnerHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	owner, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, owner)
}

// List handles GET /api/v1/owners. The pagination envelope is returned
// directly, unwrapped.
func (h *OwnerHandler) List(c *gin.Context) {
	params := query.ParseListParams(c, ownerSchema.DefaultLimit)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filters handles GET /api/v1/owners/filters, describing the filterable
// fields of the resource.
func (h *OwnerHandler) Filters(c *gin.Context) {
	pkg.Success(c, ownerSchema.Describe())
}

// Suggestions handles GET /api/v1/owners/suggestions/contacts, the contact
// autocomplete endpoint.
func (h *OwnerHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.svc.ContactSuggestions(c.Request.Context(), c.Query("search"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, suggestions)
}

// Update handles PUT /api/v1/owners/:id.
func (h *OwnerHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req OwnerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	owner, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, owner)
}

// Delete handles DELETE /api/v1/owners/:id.
func (h *OwnerHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "owner deleted")
}

// Restore handles PATCH /api/v1/owners/:id/restore.
func (h *OwnerHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	owner, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, owner)
}
