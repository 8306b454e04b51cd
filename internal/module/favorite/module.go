package favorite

import (
	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/middleware"
)

// FavoriteModule implements the app.Module interface for the favorite domain.
type FavoriteModule struct {
	handler *FavoriteHandler
}

// NewModule creates a new FavoriteModule with the given handler.
// Panics if h is nil.
func NewModule(h *FavoriteHandler) *FavoriteModule {
	if h == nil {
		panic("favorite.NewModule: handler must not be nil")
	}
	return &FavoriteModule{handler: h}
}

// RegisterRoutes registers favorite API routes.
func (m *FavoriteModule) RegisterRoutes(api *gin.RouterGroup) {
	favorites := api.Group("/favorites", middleware.CacheControl(middleware.NoStoreDirective))

	favorites.GET("/user/:user_id", m.handler.ListByUser)
	favorites.GET("/check", m.handler.Check)
	favorites.POST("", m.handler.Create)
	favorites.DELETE("/:id", m.handler.Delete)
}
