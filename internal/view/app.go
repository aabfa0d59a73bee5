// SPDX-License-Identifier: MIT
// Package view holds the per-request UI state of the site: which product is
// selected, which face of it is shown, and the navbar and card toggles.
// None of it knows about HTML; components render whatever state they are given.
package view

import (
	"strings"

	"github.com/harishsolar/solarsite/internal/catalog"
)

// ProductHashPrefix marks a URL fragment as a product deep link
const ProductHashPrefix = "#product-"

// App is the root selection state. A nil Selected means the list view.
type App struct {
	Catalog  *catalog.Catalog
	Selected *catalog.Product

	// PendingScroll is the section anchor to scroll to once the list view has rendered
	PendingScroll string
}

// NewApp returns the list-view state for c
func NewApp(c *catalog.Catalog) *App {
	return &App{Catalog: c}
}

// IsDetail reports whether a product is selected
func (a *App) IsDetail() bool {
	return a.Selected != nil
}

// SelectProduct switches to the detail view of p. The viewport goes to the top,
// so any pending section scroll is dropped.
func (a *App) SelectProduct(p *catalog.Product) {
	a.Selected = p
	a.PendingScroll = ""
}

// ClearSelection returns to the list view
func (a *App) ClearSelection() {
	a.Selected = nil
}

// NavigateHome returns to the list view and, if section is not empty, records
// it to be scrolled to after the list has rendered
func (a *App) NavigateHome(section string) {
	a.ClearSelection()
	a.PendingScroll = strings.TrimPrefix(section, "#")
}

// PopState applies a browser history navigation landing on hash. Anything
// other than a product deep link clears the selection.
func (a *App) PopState(hash string) {
	id, ok := ProductIDFromHash(hash)
	if !ok {
		a.ClearSelection()
		return
	}

	if p, found := a.Catalog.Product(id); found {
		a.SelectProduct(p)
		return
	}
	a.ClearSelection()
}

// Path is the URL that shows the current state
func (a *App) Path() string {
	if a.Selected != nil {
		return "/products/" + a.Selected.ID
	}
	if a.PendingScroll != "" {
		return "/#" + a.PendingScroll
	}
	return "/"
}

// DeepLinks maps each product's deep link to the page a history navigation
// onto it ends up showing
func DeepLinks(c *catalog.Catalog) map[string]string {
	links := make(map[string]string, len(c.Products))
	for _, p := range c.Products {
		a := NewApp(c)
		a.PopState(ProductHash(p.ID))
		links[ProductHash(p.ID)] = a.Path()
	}
	return links
}

// UnknownDeepLink is where a product deep link that names no product leads
func UnknownDeepLink(c *catalog.Catalog) string {
	a := NewApp(c)
	a.PopState(ProductHashPrefix)
	return a.Path()
}

// IsProductHash reports whether hash is a product deep link
func IsProductHash(hash string) bool {
	_, ok := ProductIDFromHash(hash)
	return ok
}

// ProductIDFromHash extracts the product ID from a "#product-<id>" fragment
func ProductIDFromHash(hash string) (string, bool) {
	if !strings.HasPrefix(hash, "#") {
		hash = "#" + hash
	}
	if !strings.HasPrefix(hash, ProductHashPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(hash, ProductHashPrefix)
	return id, id != ""
}

// ProductHash returns the deep-link fragment for a product
func ProductHash(id string) string {
	return ProductHashPrefix + id
}
