// SPDX-License-Identifier: MIT
package components

import (
	"github.com/harishsolar/solarsite/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// sectionHref links to a home page section. From the home page the anchor is
// enough; from anywhere else the link goes back to the list view first.
func sectionHref(section string, onHome bool) string {
	if onHome {
		return "#" + section
	}
	return "/#" + section
}

// navLinks are the links whose sections the site renders
func navLinks(site *Site) []view.NavLink {
	links := make([]view.NavLink, 0, len(view.NavLinks))
	for _, l := range view.NavLinks {
		if l.Section == "applications" && !site.showsApplications() {
			continue
		}
		links = append(links, l)
	}
	return links
}

// Navbar renders the fixed site navigation with its mobile menu
func Navbar(site *Site, state view.Navbar, onHome bool) g.Node {
	links := navLinks(site)
	link := func(l view.NavLink) g.Node {
		return A(Href(sectionHref(l.Section, onHome)), g.Text(l.Name))
	}

	return Nav(
		ID("navbar"),
		g.Attr("data-scrolled", boolAttr(state.Scrolled)),
		g.Attr("data-open", boolAttr(state.MenuOpen)),
		Div(
			Class("container nav-inner"),
			A(Href(sectionHref("home", onHome)), Class("nav-home"), Logo()),
			Div(
				Class("nav-links"),
				g.Map(links, link),
				A(Href(sectionHref("contact", onHome)), Class("nav-cta"), g.Text("Enquire")),
			),
			// Without scripts the toggle reloads the page with the menu flipped
			A(
				Href(menuToggleHref(state)),
				Class("nav-toggle"),
				g.Attr("role", "button"),
				g.Attr("aria-label", "Toggle Menu"),
				g.Attr("aria-expanded", boolAttr(state.MenuOpen)),
				Icon("menu", "icon-open"),
				Icon("x", "icon-close"),
			),
		),
		Div(
			Class("nav-menu"),
			g.Map(links, link),
			A(Href(sectionHref("contact", onHome)), Class("btn"), g.Text("Enquire Now")),
		),
	)
}

func menuToggleHref(state view.Navbar) string {
	state.ToggleMenu()
	if state.MenuOpen {
		return "?menu=open"
	}
	return "?"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
