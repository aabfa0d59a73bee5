// SPDX-License-Identifier: MIT
// Package components renders the site's pages as gomponents node trees.
// Components are pure functions of the state they are given.
package components

import (
	"fmt"

	"github.com/harishsolar/solarsite/internal/catalog"
	"github.com/harishsolar/solarsite/internal/themes"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LogoPath is the site logo image
const LogoPath = "/images/logo.png"

// Images picks which file a catalog card displays for an image reference
type Images interface {
	Card(ref string) string
}

// Site is what every page needs to render
type Site struct {
	Name    string
	Theme   *themes.Theme
	Catalog *catalog.Catalog
	Images  Images
}

func (s *Site) cardImage(ref string) string {
	if s.Images == nil {
		return ref
	}
	return s.Images.Card(ref)
}

func (s *Site) dark() bool {
	return s.Theme == nil || s.Theme.IsDark()
}

// Icon renders a lucide icon through iconify
func Icon(name, class string) g.Node {
	return Span(
		Class("iconify icon "+class),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// fallbackSrc swaps a broken image for placeholder, once
func fallbackSrc(placeholder string) g.Node {
	return g.Attr("onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", placeholder))
}

// Logo renders the logo image with a text mark shown if the image fails
func Logo() g.Node {
	return Span(
		Class("logo"),
		Img(
			Src(LogoPath),
			Alt("Harish Solar Logo"),
			Class("logo-img"),
			g.Attr("onerror", "this.parentNode.classList.add('logo-failed')"),
		),
		Span(
			Class("logo-mark"),
			Span(Class("logo-badge"), g.Text("HS")),
			Span(Class("logo-text"), g.Text("HARISH "), Span(Class("accent"), g.Text("SOLAR"))),
		),
	)
}

// showsApplications reports whether the applications strip is rendered.
// Only the light site shows it.
func (s *Site) showsApplications() bool {
	return !s.dark() && len(s.Catalog.Applications) > 0
}

// productHref is the detail page URL of a product
func productHref(id string) string {
	return "/products/" + id
}
