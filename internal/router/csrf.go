package router

import (
	"errors"
	"net/http"

	"github.com/devakalpa1/DeckOracle/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Define keys for storing the token in the session and context.
const (
	csrfTokenSessionKey = "csrf_token"
	csrfTokenContextKey = "csrf_token"
	csrfTokenHeaderKey  = "X-CSRF-Token"
)

// CSRFProtection guards the cookie-session API against cross-site
// request forgery. Clients fetch the token from GET /api/csrf and echo
// it in the X-CSRF-Token header on every unsafe method.
func CSRFProtection() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		// 1. Get or create the real CSRF token for the session.
		var token string
		sessionToken := session.Get(csrfTokenSessionKey)

		if sessionToken == nil {
			newToken, err := utils.GenerateSecureToken(32)
			if err != nil {
				c.AbortWithError(http.StatusInternalServerError, errors.New("failed to generate CSRF token"))
				return
			}
			token = newToken
			session.Set(csrfTokenSessionKey, token)
			if err := session.Save(); err != nil {
				c.AbortWithError(http.StatusInternalServerError, errors.New("failed to save session"))
				return
			}
		} else {
			token = sessionToken.(string)
		}

		// 2. Make the token available to the token endpoint.
		c.Set(csrfTokenContextKey, token)

		// 3. Validate the token on unsafe methods.
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			submitted := c.GetHeader(csrfTokenHeaderKey)
			if submitted == "" || submitted != token {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid CSRF token"})
				return
			}
		}

		c.Next()
	}
}

// CSRFToken returns the session's token for clients to echo back.
func CSRFToken(c *gin.Context) {
	token, exists := c.Get(csrfTokenContextKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CSRF token unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csrf_token": token})
}
