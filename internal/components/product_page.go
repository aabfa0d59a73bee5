// SPDX-License-Identifier: MIT
package components

import (
	"fmt"

	"github.com/harishsolar/solarsite/internal/catalog"
	"github.com/harishsolar/solarsite/internal/media"
	"github.com/harishsolar/solarsite/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// dissolveClass is applied to the sticky image that fades out on scroll
const dissolveClass = "dissolve"

type highlight struct {
	Icon  string
	Label string
	Value string
}

var highlights = []highlight{
	{Icon: "sun", Label: "Illumination", Value: "OSRAM German Tech"},
	{Icon: "battery", Label: "Energy Storage", Value: "LiFePO4 Cells"},
}

var trustBadges = []string{"IP65 Rated", "Remote Ready", "50k+ Life"}

// EnquireHref links to the contact form prefilled for a product
func EnquireHref(id string) string {
	return "/?product=" + id + "#contact"
}

// ProductDetail renders the detail view of the selected product
func ProductDetail(site *Site, d *view.Detail) g.Node {
	p := d.Product

	return Div(
		Class("product-page"),
		Div(
			Class("container"),
			A(
				Href("/#products"),
				Class("back-link"),
				Span(Class("circle"), Icon("arrow-left", "")),
				Span(g.Text("Back to Catalog")),
			),
			Div(
				Class("detail-grid"),
				detailMedia(site, d),
				Div(
					Class("detail-body"),
					Div(
						Div(
							Class("badge-row"),
							Span(Class("grade"), g.Text("Premium Grade")),
							Span(Class("eyebrow"), g.Text("Model "+p.Model())),
						),
						H1(g.Text(p.Name)),
						P(Class("lead muted"), g.Text(p.Description)),
					),
					Div(
						Class("grid grid-2"),
						g.Map(highlights, func(h highlight) g.Node {
							return Div(
								Class("highlight surface"),
								Div(Class("feature-icon"), Icon(h.Icon, "")),
								Div(
									P(Class("eyebrow"), g.Text(h.Label)),
									Strong(g.Text(h.Value)),
								),
							)
						}),
					),
					specTable(p),
					Div(
						Class("cta-row"),
						A(Href(EnquireHref(p.ID)), Class("btn"), Icon("message-square", ""), Span(g.Text("Enquire Now")), Icon("chevron-right", "")),
						A(Href("tel:"+site.Catalog.Contact.Phone), Class("btn btn-ghost"), Icon("phone", ""), Span(g.Text("Call Us"))),
					),
					Div(
						Class("trust"),
						g.Map(trustBadges, func(b string) g.Node {
							return Span(Class("eyebrow"), Icon("check-circle-2", ""), g.Text(b))
						}),
					),
				),
			),
		),
	)
}

func detailMedia(site *Site, d *view.Detail) g.Node {
	class := "detail-media"
	if site.dark() {
		class += " " + dissolveClass
	}

	p := d.Product
	alt := p.Name
	loaded, failed := *d, *d
	loaded.ImageLoaded()
	failed.ImageFailed()
	if d.Face == view.Back {
		alt += " (rear)"
	}

	return Div(
		Class(class),
		Div(
			Class("detail-frame surface"),
			g.Attr("data-loading", boolAttr(d.Loading)),
			g.Attr("data-failed", boolAttr(d.Failed)),
			Div(Class("skeleton"), g.Attr("aria-hidden", "true")),
			Img(
				Src(d.CurrentImage(media.DetailPlaceholder)),
				Alt(alt),
				g.Attr("onload", frameUpdate(loaded, "")),
				g.Attr("onerror", "this.onerror=null;"+frameUpdate(failed, failed.CurrentImage(media.DetailPlaceholder))),
			),
		),
		Div(
			Class("face-toggle"),
			faceLink(d, view.Front, "Front"),
			g.If(d.CanShowBack(), faceLink(d, view.Back, "Back")),
			g.If(!d.CanShowBack(),
				Button(
					Type("button"),
					Class("btn btn-ghost"),
					Disabled(),
					g.Attr("aria-disabled", "true"),
					g.Attr("title", "No rear view available"),
					g.Text("Back"),
				),
			),
		),
	)
}

// frameUpdate is the inline handler moving the frame to state next, and to
// image src when it is set
func frameUpdate(next view.Detail, src string) string {
	js := fmt.Sprintf("this.parentNode.setAttribute('data-loading','%s');this.parentNode.setAttribute('data-failed','%s');",
		boolAttr(next.Loading), boolAttr(next.Failed))
	if src != "" {
		js += fmt.Sprintf("this.src='%s'", src)
	}
	return js
}

func faceLink(d *view.Detail, f view.Face, label string) g.Node {
	return A(
		Href(fmt.Sprintf("%s?view=%s", productHref(d.Product.ID), f)),
		Class("btn btn-ghost"),
		g.Attr("data-keep-scroll", ""),
		g.Attr("aria-current", boolAttr(d.Face == f)),
		g.Text(label),
	)
}

func specTable(p *catalog.Product) g.Node {
	return Div(
		H3(Icon("shield-check", ""), g.Text("Technical Specifications")),
		Div(
			Class("spec-table-wrap surface"),
			Table(
				Class("spec-table"),
				TBody(
					g.Map(p.Details, func(d catalog.Detail) g.Node {
						return Tr(Td(g.Text(d.Feature)), Td(g.Text(d.Value)))
					}),
				),
			),
		),
	)
}
