package middleware

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/model"
	"serava-assistant/pkg/response"
)

const scopeKey = "x-scope"

// Auth identifies the caller and requires a stored Google credential.
// The resolved scope is attached to the request context for handlers.
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = c.Query("user_id")
		}
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ok, err := m.authUC.HasCredential(ctx, userID)
		if err != nil {
			m.l.Errorf(ctx, "middleware.Auth: HasCredential: %v", err)
			response.InternalError(c)
			c.Abort()
			return
		}
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// Scope returns the caller scope set by Auth, or the zero scope.
func Scope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
