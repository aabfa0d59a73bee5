// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/themes"
)

func themeRequest(t *testing.T, defaultTheme, target string, cookie string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ThemeMiddleware(defaultTheme, ""))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetTheme(c).Name) })

	req := httptest.NewRequest("GET", target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: themeCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Body.String(), w
}

func TestThemeResolution(t *testing.T) {
	tests := []struct {
		name         string
		defaultTheme string
		target       string
		cookie       string
		want         string
	}{
		{"site default", themes.Light, "/", "", themes.Light},
		{"invalid default", "neon", "/", "", themes.Dark},
		{"cookie wins over default", themes.Dark, "/", themes.Light, themes.Light},
		{"query wins over cookie", themes.Dark, "/?theme=dark", themes.Light, themes.Dark},
		{"invalid query ignored", themes.Light, "/?theme=neon", "", themes.Light},
		{"invalid cookie ignored", themes.Light, "/", "neon", themes.Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := themeRequest(t, tt.defaultTheme, tt.target, tt.cookie)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestThemeQueryIsRemembered(t *testing.T) {
	_, w := themeRequest(t, themes.Dark, "/?theme=light", "")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != themeCookieName || cookies[0].Value != themes.Light {
		t.Errorf("expected theme cookie, got %v", cookies)
	}
}

func TestGetThemeWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if GetTheme(c).Name != themes.Dark {
		t.Error("expected dark fallback")
	}
}
