package app

import "github.com/gin-gonic/gin"

// Module is implemented by each domain module to register its routes.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
