package middleware

import "github.com/gin-gonic/gin"

// Cache-Control values used across the API surface.
const (
	// NoStoreDirective disables caching on list/detail reads of primary
	// resources, whose responses change with every mutation.
	NoStoreDirective = "no-cache, no-store, must-revalidate"

	// SuggestionCacheDirective allows short public caching on autocomplete
	// endpoints.
	SuggestionCacheDirective = "public, max-age=30"
)

// CacheControl returns a gin middleware setting the Cache-Control header to
// the given directive on every response it wraps.
func CacheControl(directive string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", directive)
		c.Next()
	}
}
