package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context and cookie keys for the anonymous storefront session. The session
// only scopes a cart; there are no accounts.
const (
	SessionIDKey     = "session_id"
	SessionCookie    = "shop_session"
	sessionCookieTTL = 60 * 60 * 24 // seconds
)

// SessionMiddleware ensures every request carries a session id, issuing a
// cookie on first contact and reusing it afterwards.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, sessionCookieTTL, "/", "", false, true)
			log.Debug("Issued new session cookie", map[string]interface{}{
				"session_id": sessionID,
			})
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the session id from the gin context.
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
