package tenant

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// TenantModule implements the app.Module interface for the tenant domain.
type TenantModule struct {
	handler *TenantHandler
}

// NewModule creates a new TenantModule with the given handler.
// Panics if h is nil.
func NewModule(h *TenantHandler) *TenantModule {
	if h == nil {
		panic("tenant.NewModule: handler must not be nil")
	}
	return &TenantModule{handler: h}
}

// RegisterRoutes registers tenant API routes.
func (m *TenantModule) RegisterRoutes(api *gin.RouterGroup) {
	tenants := api.Group("/tenants", middleware.CacheControl(middleware.NoStoreDirective))

	tenants.GET("", m.handler.List)
	tenants.GET("/filters", m.handler.Filters)
	tenants.GET("/suggestions/contacts", middleware.CacheControl(middleware.SuggestionCacheDirective), m.handler.Suggestions)
	tenants.GET("/:id", m.handler.Get)
	tenants.POST("", m.handler.Create)
	tenants.PUT("/:id", m.handler.Update)
	tenants.DELETE("/:id", m.handler.Delete)
	tenants.PATCH("/:id/restore", m.handler.Restore)
}
