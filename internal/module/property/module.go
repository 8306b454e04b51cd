package property

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// PropertyModule implements the app.Module interface for the property domain.
type PropertyModule struct {
	handler *PropertyHandler
}

// NewModule creates a new PropertyModule with the given handler.
// Panics if h is nil.
func NewModule(h *PropertyHandler) *PropertyModule {
	if h == nil {
		panic("property.NewModule: handler must not be nil")
	}
	return &PropertyModule{handler: h}
}

// RegisterRoutes registers property API routes.
func (m *PropertyModule) RegisterRoutes(api *gin.RouterGroup) {
	properties := api.Group("/properties", middleware.CacheControl(middleware.NoStoreDirective))

	properties.GET("", m.handler.List)
	properties.GET("/filters", m.handler.Filters)
	properties.GET("/:id", m.handler.Get)
	properties.POST("", m.handler.Create)
	properties.PUT("/:id", m.handler.Update)
	properties.DELETE("/:id", m.handler.Delete)
	properties.PATCH("/:id/restore", m.handler.Restore)
	properties.POST("/:id/documents", m.handler.AttachDocuments)
}
