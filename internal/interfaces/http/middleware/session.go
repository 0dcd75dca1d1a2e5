package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saraswati-store/storefront/internal/config"
)

const (
	// SessionCookie names the cookie that identifies a shopper's cart
	SessionCookie = "session_id"
	// SharedCartKey is the single cart used when carts are not per session
	SharedCartKey = "shared"

	cartKeyContextKey = "cart_key"
)

// CartSession resolves which cart the request operates on. In session scope
// a new session cookie is issued when the request carries none.
func CartSession(scope string, maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := SharedCartKey
		if scope == config.CartScopeSession {
			key = getOrCreateSessionID(c, maxAge)
		}

		c.Set(cartKeyContextKey, key)
		c.Next()
	}
}

// GetCartKey extracts the cart key from gin context
func GetCartKey(c *gin.Context) string {
	if key := c.GetString(cartKeyContextKey); key != "" {
		return key
	}
	return SharedCartKey
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func getOrCreateSessionID(c *gin.Context, maxAge int) string {
	sessionID, err := c.Cookie(SessionCookie)
	if err == nil && sessionID != "" {
		return sessionID
	}

	sessionID = uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", false, true)

	return sessionID
}
