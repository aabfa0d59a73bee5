// SPDX-License-Identifier: MIT
package components

import (
	"fmt"

	"github.com/harishsolar/solarsite/internal/media"
	"github.com/harishsolar/solarsite/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ProductCard renders one catalog entry. The whole card links to the product
// page; hovering crossfades to the rear image when the product has one.
func ProductCard(site *Site, card view.Card) g.Node {
	p := card.Product
	rest, hover, flips := card.Faces()
	mediaClass := "card-media"
	if flips {
		mediaClass += " has-back"
	}

	return A(
		Href(productHref(p.ID)),
		Class(fmt.Sprintf("card-link reveal delay-%d", card.Index%5)),
		ID("product-"+p.ID),
		g.Attr("data-product", p.ID),
		Article(
			Class("product-card surface"),
			Div(
				Class("card-tag"),
				Icon("shield-check", ""),
				Span(Class("eyebrow"), g.Text("Premium Series")),
			),
			Div(
				Class(mediaClass),
				Img(
					Class("img-front"),
					Src(site.cardImage(rest)),
					Alt(p.Name),
					g.Attr("loading", "lazy"),
					fallbackSrc(media.CardPlaceholder),
				),
				// A broken rear image removes itself so the front stays visible
				g.If(flips,
					Img(
						Class("img-back"),
						Src(site.cardImage(hover)),
						Alt(p.Name+" (rear)"),
						g.Attr("loading", "lazy"),
						g.Attr("onerror", "this.remove()"),
					),
				),
			),
			Div(
				Class("card-title"),
				H3(g.Text(p.Name)),
				Span(Class("card-arrow"), Icon("chevron-right", "")),
			),
			Ul(
				Class("spec-list"),
				g.Map(p.CardSpecs(), func(s string) g.Node {
					return Li(g.Text(s))
				}),
			),
		),
	)
}

// CatalogSection renders the product grid in catalog order
func CatalogSection(site *Site) g.Node {
	return PageSection(SectionProps{
		ID:       "products",
		Title:    "Our Catalog",
		Subtitle: "Explore our high-performance solar range.",
	},
		Div(
			Class("grid grid-3 catalog"),
			g.Map(view.Cards(site.Catalog), func(c view.Card) g.Node {
				return ProductCard(site, c)
			}),
		),
	)
}
