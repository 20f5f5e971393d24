package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-chat-memory/internal/application"
	"github.com/oksasatya/go-chat-memory/pkg/response"
)

// APIKeyAuth resolves the opaque API key from the Authorization header to
// its owning user and sets userID in the Gin context. The key is the sole
// credential for memory-bearing requests.
func APIKeyAuth(creds *application.CredentialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("Authorization")
		if apiKey == "" {
			response.AbortError[any](c, http.StatusUnauthorized, "missing api key", nil)
			return
		}
		u, err := creds.Resolve(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, application.ErrUnauthenticated) {
				response.AbortError[any](c, http.StatusUnauthorized, "invalid api key", nil)
				return
			}
			response.AbortError[any](c, http.StatusInternalServerError, "failed to verify api key", nil)
			return
		}
		c.Set("userID", u.UserID)
		c.Next()
	}
}
