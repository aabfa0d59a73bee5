// SPDX-License-Identifier: MIT
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SectionProps configures a titled page section
type SectionProps struct {
	ID       string
	Title    string
	Subtitle string
	// Alt switches to the alternate background
	Alt bool
}

// PageSection renders a titled container. The heading fades in the first time
// it is scrolled into view.
func PageSection(props SectionProps, children ...g.Node) g.Node {
	class := "section"
	if props.Alt {
		class += " section-alt"
	}

	return Section(
		ID(props.ID),
		Class(class),
		Div(
			Class("container"),
			g.If(props.Title != "" || props.Subtitle != "",
				Div(
					Class("section-head"),
					g.If(props.Title != "", H2(Class("reveal"), g.Text(props.Title))),
					g.If(props.Subtitle != "", P(Class("reveal delay-2 muted"), g.Text(props.Subtitle))),
					Div(Class("underline-bar reveal")),
				),
			),
			g.Group(children),
		),
	)
}
