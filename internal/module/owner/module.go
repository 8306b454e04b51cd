package owner

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// OwnerModule implements the app.Module interface for the owner domain.
type OwnerModule struct {
	handler *OwnerHandler
}

// NewModule creates a new OwnerModule with the given handler.
// Panics if h is nil.
func NewModule(h *OwnerHandler) *OwnerModule {
	if h == nil {
		panic("owner.NewModule: handler must not be nil")
	}
	return &OwnerModule{handler: h}
}

// RegisterRoutes registers owner API routes.
func (m *OwnerModule) RegisterRoutes(api *gin.RouterGroup) {
	owners := api.Group("/owners", middleware.CacheControl(middleware.NoStoreDirective))

	owners.GET("", m.handler.List)
	owners.GET("/filters", m.handler.Filters)
	owners.GET("/suggestions/contacts", middleware.CacheControl(middleware.SuggestionCacheDirective), m.handler.Suggestions)
	owners.GET("/:id", m.handler.Get)
	owners.POST("", m.handler.Create)
	owners.PUT("/:id", m.handler.Update)
	owners.DELETE("/:id", m.handler.Delete)
	owners.PATCH("/:id/restore", m.handler.Restore)
}
