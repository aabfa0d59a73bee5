// SPDX-License-Identifier: MIT
package components

import (
	"time"

	"github.com/harishsolar/solarsite/internal/motion"
	"github.com/harishsolar/solarsite/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// dissolveSteps is how finely the scroll transform is sampled into keyframes
const dissolveSteps = 10

// HomeProps is everything the list view renders from
type HomeProps struct {
	Site   *Site
	App    *view.App
	Navbar view.Navbar
	Form   ContactForm
	Now    time.Time
}

// HomePage renders the list view: hero, about, catalog, technology,
// applications and contact
func HomePage(props HomeProps) g.Node {
	site := props.Site

	scripts := []string{deepLinks(site)}
	if props.App != nil && props.App.PendingScroll != "" {
		scripts = append(scripts, scrollToScript(props.App.PendingScroll))
	}

	return Layout(site, PageConfig{
		Title:   site.Name + " | Solar Street Lights",
		Scripts: scripts,
	},
		Navbar(site, props.Navbar, true),
		Main(
			Hero(site),
			About(site),
			CatalogSection(site),
			Features(site),
			g.If(site.showsApplications(), Applications(site)),
			Contact(site, props.Form),
		),
		SiteFooter(site, true, props.Now),
	)
}

// ProductProps is everything the detail view renders from
type ProductProps struct {
	Site   *Site
	Detail *view.Detail
	Navbar view.Navbar
	// ScrollY is the offset the page opens at
	ScrollY float64
	Now     time.Time
}

// ProductPage renders the detail view for one product
func ProductPage(props ProductProps) g.Node {
	site := props.Site
	p := props.Detail.Product

	config := PageConfig{
		Title:       p.Name + " | " + site.Name,
		Description: p.Description,
		Scripts:     []string{scrollRestoreScript(props.ScrollY), keepScrollScript, deepLinks(site)},
	}
	if site.dark() {
		config.ExtraCSS = motion.DefaultRange.Keyframes(dissolveClass, dissolveSteps)
		config.Scripts = append(config.Scripts, motion.DefaultRange.Script(dissolveClass))
	}

	return Layout(site, config,
		Navbar(site, props.Navbar, false),
		Main(ProductDetail(site, props.Detail)),
		SiteFooter(site, false, props.Now),
	)
}

func deepLinks(site *Site) string {
	return deepLinkScript(view.DeepLinks(site.Catalog), view.UnknownDeepLink(site.Catalog))
}

// NotFoundPage is shown for unknown products and paths
func NotFoundPage(site *Site, now time.Time) g.Node {
	return Layout(site, PageConfig{Title: "Not Found | " + site.Name},
		Navbar(site, view.Navbar{}, false),
		Main(
			Div(
				Class("not-found"),
				H1(g.Text("404")),
				H2(g.Text("We couldn't find that page")),
				P(Class("muted"), g.Text("The product or page you're looking for doesn't exist.")),
				P(A(Href("/#products"), Class("btn"), g.Text("Browse the Catalog"))),
			),
		),
		SiteFooter(site, false, now),
	)
}
