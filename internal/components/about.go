// SPDX-License-Identifier: MIT
package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type stat struct {
	Value string
	Label string
}

// About introduces the company
func About(site *Site) g.Node {
	stats := []stat{
		{Value: strconv.Itoa(len(site.Catalog.Products)), Label: "Street Light Models"},
		{Value: "50k+", Label: "Hours LED Life"},
		{Value: "3000+", Label: "Battery Cycles"},
		{Value: "IP65", Label: "Weather Rating"},
	}

	return PageSection(SectionProps{
		ID:       "about",
		Title:    "About Harish Solar",
		Subtitle: "Rajasthan's premier infrastructure partner for off-grid lighting.",
		Alt:      true,
	},
		P(
			Class("about-copy muted reveal"),
			g.Text("We design and supply all-in-one solar street lights for highways, villages, campuses and industrial estates across India. "+
				"Every unit pairs OSRAM LED chips with LiFePO4 storage and smart motion sensing, so roads stay lit from dusk to dawn with zero electricity bills."),
		),
		Div(
			Class("stats"),
			g.Map(stats, func(s stat) g.Node {
				return Div(
					Class("stat surface reveal"),
					Strong(g.Text(s.Value)),
					Span(Class("eyebrow"), g.Text(s.Label)),
				)
			}),
		),
	)
}
