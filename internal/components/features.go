// SPDX-License-Identifier: MIT
package components

import (
	"fmt"

	"github.com/harishsolar/solarsite/internal/catalog"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Features renders the technology grid
func Features(site *Site) g.Node {
	return PageSection(SectionProps{
		ID:       "technology",
		Title:    "Smart Technology",
		Subtitle: "Built with the world's most reliable components.",
		Alt:      true,
	},
		Div(
			Class("grid grid-3"),
			g.Map(indexed(site.Catalog.Features), func(f indexedItem[catalog.Feature]) g.Node {
				return Div(
					Class(fmt.Sprintf("feature surface reveal delay-%d", f.Index%5)),
					Div(Class("feature-icon"), Icon(f.Item.Icon, "")),
					H4(g.Text(f.Item.Title)),
					P(Class("muted"), g.Text(f.Item.Description)),
				)
			}),
		),
	)
}

// Applications renders where the lights are installed
func Applications(site *Site) g.Node {
	return PageSection(SectionProps{
		ID:       "applications",
		Title:    "Applications",
		Subtitle: "Proven across India's roads, parks and campuses.",
	},
		Div(
			Class("applications"),
			g.Map(site.Catalog.Applications, func(a catalog.Application) g.Node {
				return Div(
					Class("application surface reveal"),
					Div(Class("feature-icon"), Icon(a.Icon, "")),
					H4(g.Text(a.Title)),
				)
			}),
		),
	)
}

type indexedItem[T any] struct {
	Index int
	Item  T
}

func indexed[T any](items []T) []indexedItem[T] {
	out := make([]indexedItem[T], len(items))
	for i, it := range items {
		out[i] = indexedItem[T]{Index: i, Item: it}
	}
	return out
}
