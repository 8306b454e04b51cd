package propertytype

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// PropertyTypeModule implements the app.Module interface for the property
// type domain.
type PropertyTypeModule struct {
	handler *PropertyTypeHandler
}

// NewModule creates a new PropertyTypeModule with the given handler.
// Panics if h is nil.
func NewModule(h *PropertyTypeHandler) *PropertyTypeModule {
	if h == nil {
		panic("propertytype.NewModule: handler must not be nil")
	}
	return &PropertyTypeModule{handler: h}
}

// RegisterRoutes registers property type API routes.
func (m *PropertyTypeModule) RegisterRoutes(api *gin.RouterGroup) {
	types := api.Group("/property-types", middleware.CacheControl(middleware.NoStoreDirective))

	types.GET("", m.handler.List)
	types.GET("/filters", m.handler.Filters)
	types.GET("/:id", m.handler.Get)
	types.POST("", m.handler.Create)
	types.PUT("/:id", m.handler.Update)
	types.DELETE("/:id", m.handler.Delete)
	types.PATCH("/:id/restore", m.handler.Restore)
}
