package lease

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// LeaseModule implements the app.Module interface for the lease domain.
type LeaseModule struct {
	handler *LeaseHandler
}

// NewModule creates a new LeaseModule with the given handler.
// Panics if h is nil.
func NewModule(h *LeaseHandler) *LeaseModule {
	if h == nil {
		panic("lease.NewModule: handler must not be nil")
	}
	return &LeaseModule{handler: h}
}

// RegisterRoutes registers lease API routes.
func (m *LeaseModule) RegisterRoutes(api *gin.RouterGroup) {
	leases := api.Group("/leases", middleware.CacheControl(middleware.NoStoreDirective))

	leases.GET("", m.handler.List)
	leases.GET("/filters", m.handler.Filters)
	leases.GET("/:id", m.handler.Get)
	leases.POST("", m.handler.Create)
	leases.PUT("/:id", m.handler.Update)
	leases.DELETE("/:id", m.handler.Delete)
	leases.PATCH("/:id/restore", m.handler.Restore)
}
