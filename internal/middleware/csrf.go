// SPDX-License-Identifier: MIT
package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/logging"
	"go.uber.org/zap"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	csrfTokenLen   = 32
	csrfContextKey = "csrf_token"

	// CSRFFormField is the hidden form field carrying the token
	CSRFFormField = "csrf_token"
)

// CSRFMiddleware provides Cross-Site Request Forgery protection using a
// double-submit cookie. secure marks the cookie HTTPS-only.
func CSRFMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate or retrieve CSRF token
		token, err := c.Cookie(csrfCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				csrfCookieName,
				token,
				3600*8, // 8 hours
				"/",
				"",
				secure,
				true,
			)
		}

		// Store token in context for the form
		c.Set(csrfContextKey, token)

		// For state-changing operations, validate the token
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			clientToken := c.GetHeader(csrfHeaderName)
			if clientToken == "" {
				clientToken = c.PostForm(CSRFFormField)
			}

			if subtle.ConstantTimeCompare([]byte(clientToken), []byte(token)) != 1 {
				logging.L().Warn("csrf token mismatch",
					zap.String("path", c.Request.URL.Path),
					zap.String("ip", c.ClientIP()))
				c.Header("Content-Type", "text/plain; charset=utf-8")
				c.String(http.StatusForbidden, "Your session expired. Please reload the page and try again.")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// generateCSRFToken creates a cryptographically secure random token. It is
// unpadded so the cookie value needs no escaping.
func generateCSRFToken() (string, error) {
	bytes := make([]byte, csrfTokenLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GetCSRFToken retrieves the CSRF token for the current request
func GetCSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
