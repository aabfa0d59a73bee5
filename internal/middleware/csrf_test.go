// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func csrfRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRFMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetCSRFToken(c)) })
	r.POST("/contact", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestCSRFIssuesToken(t *testing.T) {
	r := csrfRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	token := w.Body.String()
	if token == "" {
		t.Fatal("expected token in context")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != csrfCookieName || cookies[0].Value != token {
		t.Errorf("expected csrf cookie matching context token, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("csrf cookie should be HttpOnly")
	}
	if strings.ContainsAny(token, "=%") {
		t.Errorf("token should be sent unescaped, got %q", token)
	}
}

func TestCSRFRejectsMissingToken(t *testing.T) {
	r := csrfRouter()
	req := httptest.NewRequest("POST", "/contact", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "tok"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestCSRFAcceptsFormToken(t *testing.T) {
	r := csrfRouter()
	form := url.Values{CSRFFormField: {"tok"}}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "tok"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	r := csrfRouter()
	req := httptest.NewRequest("POST", "/contact", nil)
	req.Header.Set(csrfHeaderName, "tok")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "tok"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
