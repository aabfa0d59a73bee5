// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/themes"
)

const (
	themeCookieName = "theme"
	themeContextKey = "theme"
	themeCookieAge  = 3600 * 24 * 365
)

// ThemeMiddleware resolves the visual variant for the request: ?theme=
// (remembered in a cookie), then the cookie, then the site default
func ThemeMiddleware(defaultTheme, palette string) gin.HandlerFunc {
	// Both variants are fixed for the process lifetime
	resolved := map[string]*themes.Theme{
		themes.Dark:  themes.Resolve(themes.Dark, palette),
		themes.Light: themes.Resolve(themes.Light, palette),
	}
	if !themes.Valid(defaultTheme) {
		defaultTheme = themes.Dark
	}

	return func(c *gin.Context) {
		name := defaultTheme

		if cookie, err := c.Cookie(themeCookieName); err == nil && themes.Valid(cookie) {
			name = cookie
		}

		if q := c.Query("theme"); themes.Valid(q) {
			name = q
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(themeCookieName, q, themeCookieAge, "/", "", false, false)
		}

		c.Set(themeContextKey, resolved[name])
		c.Next()
	}
}

// GetTheme returns the theme resolved for the request, or the dark theme if
// ThemeMiddleware did not run
func GetTheme(c *gin.Context) *themes.Theme {
	if v, ok := c.Get(themeContextKey); ok {
		if t, ok := v.(*themes.Theme); ok {
			return t
		}
	}
	return themes.Resolve(themes.Dark, "")
}
