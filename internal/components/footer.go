// SPDX-License-Identifier: MIT
package components

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var footerLinks = []struct {
	Name    string
	Section string
}{
	{"Home", "home"},
	{"Products", "products"},
	{"Tech", "technology"},
	{"Contact", "contact"},
}

// SiteFooter renders the page footer
func SiteFooter(site *Site, onHome bool, now time.Time) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-inner"),
			Logo(),
			Div(
				Class("footer-links eyebrow"),
				g.Map(footerLinks, func(l struct {
					Name    string
					Section string
				}) g.Node {
					return A(Href(sectionHref(l.Section, onHome)), g.Text(l.Name))
				}),
			),
			P(
				Class("copyright"),
				g.Text(fmt.Sprintf("%s © %d. Rajasthan's Premier Infrastructure Partner.", strings.ToUpper(site.Name), now.Year())),
			),
		),
	)
}
