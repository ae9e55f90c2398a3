package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stratagix/pkg/ctxkeys"
)

const sessionKey = "auth_session"

// SessionMiddleware rejects requests that do not resolve to a session and
// stores the session on the gin context otherwise.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			msg := "Unauthorized"
			if errors.Is(err, ErrMissingAuth) {
				msg = "Missing Authorization header"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(sessionKey, session)
		c.Set(string(ctxkeys.KeyUserID), session.UserID)
		c.Set(string(ctxkeys.KeyEmail), session.Email)
		c.Set(string(ctxkeys.KeyRole), session.Role)
		c.Set(string(ctxkeys.KeyAuthType), "jwt")
		c.Next()
	}
}

// SessionFromContext returns the session stored by SessionMiddleware.
func SessionFromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
