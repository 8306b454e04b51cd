package agency

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// AgencyModule implements the app.Module interface for the agency domain.
type AgencyModule struct {
	handler *AgencyHandler
}

// NewModule creates a new AgencyModule with the given handler.
// Panics if h is nil.
func NewModule(h *AgencyHandler) *AgencyModule {
	if h == nil {
		panic("agency.NewModule: handler must not be nil")
	}
	return &AgencyModule{handler: h}
}

// RegisterRoutes registers agency API routes.
func (m *AgencyModule) RegisterRoutes(api *gin.RouterGroup) {
	agencies := api.Group("/agencies", middleware.CacheControl(middleware.NoStoreDirective))

	agencies.GET("", m.handler.List)
	agencies.GET("/filters", m.handler.Filters)
	agencies.GET("/:id", m.handler.Get)
	agencies.POST("", m.handler.Create)
	agencies.PUT("/:id", m.handler.Update)
	agencies.DELETE("/:id", m.handler.Delete)
	agencies.PATCH("/:id/restore", m.handler.Restore)
}
