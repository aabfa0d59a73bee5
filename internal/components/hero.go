// SPDX-License-Identifier: MIT
package components

import (
	"github.com/harishsolar/solarsite/internal/catalog"
	"github.com/harishsolar/solarsite/internal/media"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero renders the landing banner featuring the first catalog product
func Hero(site *Site) g.Node {
	var featured *catalog.Product
	if len(site.Catalog.Products) > 0 {
		featured = &site.Catalog.Products[0]
	}

	return Section(
		ID("home"),
		Class("hero"),
		Div(Class("hero-glow one")),
		Div(Class("hero-glow two")),
		Div(
			Class("container hero-grid"),
			Div(
				Div(
					Class("pill"),
					Span(Class("pulse-dot")),
					Span(g.Text("Premium Solar Solutions")),
				),
				H1(
					g.Text("Lighting India's Future, "), Br(),
					Span(Class("gradient-text"), g.Text("Sustainable")), g.Text(" "), Br(),
					g.Text("Technology."),
				),
				P(Class("hero-lead muted"), g.Text(defaultDescription)),
				Div(
					Class("hero-actions"),
					A(Href("#products"), Class("btn"), g.Text("View Catalog"), Icon("chevron-right", "")),
					A(Href("#contact"), Class("btn btn-ghost"), g.Text("Get a Quote")),
				),
			),
			g.Iff(featured != nil, func() g.Node { return heroMedia(featured) }),
		),
	)
}

func heroMedia(p *catalog.Product) g.Node {
	return Div(
		Class("hero-media"),
		A(
			Href(productHref(p.ID)),
			Class("hero-frame surface"),
			Img(
				Src(p.Image),
				Alt(p.Model()+" Solar Light"),
				fallbackSrc(media.HeroPlaceholder(p.Model())),
			),
			Div(
				Class("hero-badge"),
				P(Class("eyebrow"), g.Text("Bestseller")),
				Strong(g.Text(p.Model())),
			),
		),
	)
}
