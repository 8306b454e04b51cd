package lease

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// LeaseHandler handles REST API requests for the lease resource.
type LeaseHandler struct {
	svc domain.LeaseService
}

// NewLeaseHandler creates a new LeaseHandler with the given service.
func NewLeaseHandler(svc domain.LeaseService) *LeaseHandler {
	return &LeaseHandler{svc: svc}
}

// Create handles POST /api/v1/leases.
func (h *LeaseHandler) Create(c *gin.Context) {
	var req LeaseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	lease, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, lease)
}

// Get handles GET /api/v1/leases/:id.
func (h *LeaseHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	lease, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, lease)
}

// List handles GET /api/v1/leases.
func (h *LeaseHandler) List(c *gin.Context) {
	params := query.ParseListParams(c, leaseSchema.DefaultLimit)

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filters handles GET /api/v1/leases/filters.
func (h *LeaseHandler) Filters(c *gin.Context) {
	pkg.Success(c, leaseSchema.Describe())
}

// Update handles PUT /api/v1/leases/:id.
func (h *LeaseHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req LeaseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	lease, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, lease)
}

// Delete handles DELETE /api/v1/leases/:id.
func (h *LeaseHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Message(c, "lease deleted")
}

// Restore handles PATCH /api/v1/leases/:id/restore.
func (h *LeaseHandler) Restore(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	lease, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, lease)
}
