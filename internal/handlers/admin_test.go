// SPDX-License-Identifier: MIT
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/auth"
	"github.com/harishsolar/solarsite/internal/db"
	"github.com/harishsolar/solarsite/internal/inquiries"
)

// setupAdmin mounts the routes with the admin inbox enabled
func setupAdmin(t *testing.T) *testEnv {
	t.Helper()
	env := setup(t)

	hash, err := auth.HashPassword("sunlight-2026")
	if err != nil {
		t.Fatal(err)
	}
	a, err := auth.NewAuthenticator("admin", hash, "0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	env.handlers.Auth = a

	r := gin.New()
	env.handlers.Register(r)
	env.router = r
	return env
}

func (e *testEnv) session(t *testing.T) *http.Cookie {
	t.Helper()
	w := e.post("/admin/login", url.Values{"username": {"admin"}, "password": {"sunlight-2026"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after login, got %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("expected session cookie")
	return nil
}

func (e *testEnv) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestAdminDisabledWithoutAuth(t *testing.T) {
	env := setup(t)
	if w := env.get("/admin/login"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when admin is not configured, got %d", w.Code)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	env := setupAdmin(t)

	w := env.get("/admin/inquiries")
	if w.Code != http.StatusFound || w.Header().Get("Location") != auth.LoginPath {
		t.Errorf("expected redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}

	w = env.get("/admin/login")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `name="password"`) {
		t.Error("expected login form")
	}
	if w.Header().Get("X-Robots-Tag") == "" {
		t.Error("admin pages should not be indexed")
	}
}

func TestAdminLoginFailure(t *testing.T) {
	env := setupAdmin(t)

	w := env.post("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid username or password") {
		t.Error("expected error message")
	}
	if !strings.Contains(w.Body.String(), `value="admin"`) {
		t.Error("expected username to be kept")
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			t.Error("failed login must not set a session")
		}
	}
}

func TestAdminListsAndDeletesInquiries(t *testing.T) {
	env := setupAdmin(t)
	ctx := context.Background()

	first, err := env.store.Create(ctx, inquiries.Submission{Name: "Ravi", Phone: "9829012345", Product: "hs-120"}, "10.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.store.Create(ctx, inquiries.Submission{Name: "Meena", Phone: "9829054321", Message: "Village road"}, "10.0.0.2"); err != nil {
		t.Fatal(err)
	}

	cookie := env.session(t)

	w := env.do(httptest.NewRequest("GET", "/admin/inquiries", nil), cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Ravi", "Meena", "Village road", "120W All-in-One Solar Street Light", "Showing 2 of 2"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in inbox", want)
		}
	}
	if strings.Index(body, "Meena") > strings.Index(body, "Ravi") {
		t.Error("expected newest inquiry first")
	}

	w = env.do(httptest.NewRequest("POST", fmt.Sprintf("/admin/inquiries/%d/delete", first.ID), nil), cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after delete, got %d", w.Code)
	}
	if count, _ := env.store.Count(ctx); count != 1 {
		t.Errorf("expected 1 inquiry left, got %d", count)
	}

	w = env.do(httptest.NewRequest("POST", "/admin/inquiries/9999/delete", nil), cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing inquiry, got %d", w.Code)
	}

	// Deleting needs a session
	w = env.do(httptest.NewRequest("POST", "/admin/inquiries/2/delete", nil), nil)
	if w.Code != http.StatusFound {
		t.Errorf("expected redirect without session, got %d", w.Code)
	}
}

func TestAdminDeleteDatabaseFailure(t *testing.T) {
	env := setupAdmin(t)
	cookie := env.session(t)

	broken, err := db.Open("sqlite", filepath.Join(t.TempDir(), "broken.db"))
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := broken.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()
	env.handlers.Inquiries = inquiries.NewStore(broken)

	w := env.do(httptest.NewRequest("POST", "/admin/inquiries/1/delete", nil), cookie)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 when the database fails, got %d", w.Code)
	}
}

func TestAdminLogout(t *testing.T) {
	env := setupAdmin(t)
	cookie := env.session(t)

	w := env.do(httptest.NewRequest("POST", "/admin/logout", nil), cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be cleared")
	}
}
