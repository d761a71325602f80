package middleware

import (
	"ambulance/internal/session"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// SessionAuth resolves the session cookie into a principal for downstream
// handlers. An absent, invalid, or expired token simply leaves the request
// unauthenticated; each handler decides whether that is an error.
func SessionAuth(signer session.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(session.CookieName); err == nil {
			if username, ok := signer.Principal(cookie); ok {
				c.Set(principalKey, username)
			}
		}
		c.Next()
	}
}

// Principal returns the authenticated username, empty when unauthenticated.
func Principal(c *gin.Context) string {
	if v, ok := c.Get(principalKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
