// SPDX-License-Identifier: MIT
package view

import (
	"testing"

	"github.com/harishsolar/solarsite/internal/catalog"
)

func TestNavbarScrollThreshold(t *testing.T) {
	var n Navbar

	tests := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{50, false},
		{50.5, true},
		{400, true},
		{10, false},
	}

	for _, tt := range tests {
		n.OnScroll(tt.y)
		if n.Scrolled != tt.want {
			t.Errorf("y=%v: expected scrolled=%v", tt.y, tt.want)
		}
	}
}

func TestNavbarLinkClosesMenu(t *testing.T) {
	c := catalog.Default()
	app := NewApp(c)
	app.SelectProduct(&c.Products[2])

	var n Navbar
	n.ToggleMenu()
	if !n.MenuOpen {
		t.Fatal("expected menu open")
	}

	n.Activate(NavLinks[2], app)

	if n.MenuOpen {
		t.Error("expected menu closed after link activation")
	}
	if app.IsDetail() {
		t.Error("expected selection cleared")
	}
	if app.PendingScroll != "products" {
		t.Errorf("expected pending scroll to products, got %q", app.PendingScroll)
	}
}
