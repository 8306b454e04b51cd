package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const userIDContextKey = "user_id"

// Auth returns a gin middleware that requires a valid Bearer token on every
// request whose path is not in publicPaths. The token's subject is stored in
// the gin.Context under "user_id".
func Auth(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(c *gin.Context) {
		if public[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		parsed, err := jwtSvc.ValidateAndParse(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDContextKey, parsed.UserID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin.Context.
// Returns an empty string if the request was not authenticated.
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(userIDContextKey); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
