// SPDX-License-Identifier: MIT
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName holds the admin session token
	CookieName = "solarsite_admin"
	// LoginPath is where unauthenticated admin requests are sent
	LoginPath = "/admin/login"

	adminContextKey = "admin"
)

// SetSession stores token in the session cookie
func SetSession(c *gin.Context, a *Authenticator, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(a.TTL.Seconds()), "/admin", "", secure, true)
}

// ClearSession removes the session cookie
func ClearSession(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/admin", "", secure, true)
}

// RequireAdmin redirects to the login page unless the request carries a
// valid session
func RequireAdmin(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		claims, err := a.ValidateToken(cookie)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(adminContextKey, claims.Subject)
		c.Next()
	}
}

// AdminName returns the logged-in admin, if any
func AdminName(c *gin.Context) string {
	return c.GetString(adminContextKey)
}
