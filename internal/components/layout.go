// SPDX-License-Identifier: MIT
package components

import (
	"github.com/harishsolar/solarsite/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageConfig describes the document around a page's content
type PageConfig struct {
	Title       string
	Description string
	// ExtraCSS is appended after the site stylesheet
	ExtraCSS string
	// Scripts are inline scripts run at the end of the body
	Scripts []string
}

const defaultDescription = "Premium solar street lighting solutions for Indian infrastructure, featuring smart, sustainable, and reliable technology."

// Layout wraps content in the full HTML document for the site's theme
func Layout(site *Site, config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = site.Name
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}

	themeName, themeCSS := "dark", ""
	if site.Theme != nil {
		themeName, themeCSS = site.Theme.Name, site.Theme.CSS
	}

	scripts := append([]string{revealScript, navbarScript(view.ScrollThreshold)}, config.Scripts...)

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", themeName),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("icon"), Href(LogoPath)),
				StyleEl(g.Raw(themeCSS)),
				StyleEl(g.Raw(SiteCSS)),
				g.If(config.ExtraCSS != "", StyleEl(g.Raw(config.ExtraCSS))),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),
				g.Map(scripts, func(s string) g.Node {
					return Script(g.Raw(s))
				}),
			),
		),
	})
}
