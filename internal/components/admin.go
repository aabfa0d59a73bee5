// SPDX-License-Identifier: MIT
package components

import (
	"fmt"
	"strconv"

	"github.com/harishsolar/solarsite/internal/models"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const adminCSS = `
.admin { max-width: 1100px; margin: 0 auto; padding: 48px 24px; }
.admin-bar { display: flex; justify-content: space-between; align-items: center; gap: 16px; margin-bottom: 32px; }
.admin-login { max-width: 420px; margin: 10vh auto; padding: 40px; border-radius: 2rem; display: flex; flex-direction: column; gap: 20px; }
.inquiry { padding: 24px; border-radius: 1.5rem; margin-bottom: 16px; }
.inquiry header { display: flex; justify-content: space-between; gap: 16px; flex-wrap: wrap; }
.inquiry p { white-space: pre-wrap; }
.inquiry form { display: inline; }
.tag { font-size: 0.75rem; font-weight: 700; padding: 2px 10px; border-radius: 999px; border: 1px solid var(--color-border); }
`

// AdminLoginProps is the state of the admin login form
type AdminLoginProps struct {
	Site      *Site
	CSRFField string
	CSRFToken string
	Username  string
	Error     string
}

// AdminLoginPage renders the admin sign-in form
func AdminLoginPage(props AdminLoginProps) g.Node {
	return Layout(props.Site, PageConfig{Title: "Admin | " + props.Site.Name, ExtraCSS: adminCSS},
		Main(
			Form(
				Class("admin-login surface"),
				Method("post"),
				Action("/admin/login"),
				H1(g.Text("Inquiry Inbox")),
				g.If(props.Error != "", P(Class("notice error"), g.Attr("role", "alert"), g.Text(props.Error))),
				g.If(props.CSRFField != "", Input(Type("hidden"), Name(props.CSRFField), Value(props.CSRFToken))),
				Div(Class("field"),
					Label(Class("eyebrow"), For("admin-username"), g.Text("Username")),
					Input(Type("text"), ID("admin-username"), Name("username"), Value(props.Username), Required(), g.Attr("autocomplete", "username")),
				),
				Div(Class("field"),
					Label(Class("eyebrow"), For("admin-password"), g.Text("Password")),
					Input(Type("password"), ID("admin-password"), Name("password"), Required(), g.Attr("autocomplete", "current-password")),
				),
				Button(Type("submit"), Class("btn btn-block"), g.Text("Sign In")),
			),
		),
	)
}

// AdminInquiriesProps is what the inbox renders from
type AdminInquiriesProps struct {
	Site      *Site
	CSRFField string
	CSRFToken string
	Admin     string
	Inquiries []models.Inquiry
	Total     int64
}

// AdminInquiriesPage lists stored inquiries, newest first
func AdminInquiriesPage(props AdminInquiriesProps) g.Node {
	csrf := g.If(props.CSRFField != "", Input(Type("hidden"), Name(props.CSRFField), Value(props.CSRFToken)))

	return Layout(props.Site, PageConfig{Title: "Inquiries | " + props.Site.Name, ExtraCSS: adminCSS},
		Main(
			Class("admin"),
			Div(
				Class("admin-bar"),
				Div(
					H1(g.Text("Inquiries")),
					P(Class("muted"), g.Textf("Showing %d of %d. Signed in as %s.", len(props.Inquiries), props.Total, props.Admin)),
				),
				Form(Method("post"), Action("/admin/logout"),
					csrf,
					Button(Type("submit"), Class("btn btn-ghost"), g.Text("Sign Out")),
				),
			),
			g.If(len(props.Inquiries) == 0, P(Class("muted"), g.Text("No inquiries yet."))),
			g.Map(props.Inquiries, func(inq models.Inquiry) g.Node {
				return inquiryRow(props.Site, inq, csrf)
			}),
		),
	)
}

func inquiryRow(site *Site, inq models.Inquiry, csrf g.Node) g.Node {
	product := ""
	if inq.ProductID != "" {
		product = inq.ProductID
		if p, ok := site.Catalog.Product(inq.ProductID); ok {
			product = p.Name
		}
	}

	return Article(
		Class("inquiry surface"),
		ID(fmt.Sprintf("inquiry-%d", inq.ID)),
		g.El("header",
			Div(
				Strong(g.Text(inq.Name)),
				g.Text(" · "),
				A(Href("tel:"+inq.Phone), g.Text(inq.Phone)),
			),
			Div(
				Span(Class("muted"), g.Text(inq.CreatedAt.Format("2 Jan 2006 15:04"))),
				g.Text(" "),
				g.If(inq.Notified, Span(Class("tag"), g.Text("emailed"))),
			),
		),
		g.If(product != "", P(Class("eyebrow"), g.Text(product))),
		g.If(inq.Message != "", P(g.Text(inq.Message))),
		Form(Method("post"), Action("/admin/inquiries/"+strconv.FormatUint(uint64(inq.ID), 10)+"/delete"),
			g.Attr("onsubmit", "return confirm('Delete this inquiry?')"),
			csrf,
			Button(Type("submit"), Class("btn btn-ghost"), g.Text("Delete")),
		),
	)
}
