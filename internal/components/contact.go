// SPDX-License-Identifier: MIT
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactForm is the state of the inquiry form
type ContactForm struct {
	CSRFField string
	CSRFToken string

	Name    string
	Phone   string
	Message string
	Product string

	// Errors maps a field name to its validation message
	Errors map[string]string
	// Sent is set after a successful submission
	Sent bool
	// Failed is set when a valid submission could not be stored
	Failed bool
}

// Contact renders the contact details and the inquiry form
func Contact(site *Site, form ContactForm) g.Node {
	info := site.Catalog.Contact

	return PageSection(SectionProps{
		ID:       "contact",
		Title:    "Get In Touch",
		Subtitle: "Contact us for infrastructure needs.",
	},
		Div(
			Class("grid grid-lg-2"),
			Div(
				Class("contact-card surface"),
				H3(g.Text("Direct Support")),
				contactRow("phone", "Call Us", A(Href("tel:"+info.Phone), g.Text(info.Phone))),
				contactRow("mail", "Email", A(Href("mailto:"+info.Email), g.Text(info.Email))),
				contactRow("map-pin", "Headquarters", Span(Class("value"), g.Text(info.Address))),
			),
			Div(
				Class("contact-card surface"),
				H4(g.Text("Inquiry Form")),
				inquiryForm(form),
			),
		),
	)
}

func contactRow(icon, label string, value g.Node) g.Node {
	return Div(
		Class("contact-row"),
		Div(Class("feature-icon"), Icon(icon, "")),
		Div(
			P(Class("eyebrow"), g.Text(label)),
			value,
		),
	)
}

func inquiryForm(form ContactForm) g.Node {
	return Form(
		Class("inquiry-form"),
		Method("post"),
		Action("/contact"),
		g.If(form.Sent, P(Class("notice success"), g.Attr("role", "status"), g.Text("Thank you! We'll get back to you shortly."))),
		g.If(form.Failed, P(Class("notice error"), g.Attr("role", "alert"), g.Text("Sorry, we couldn't send your inquiry. Please call or email us."))),
		g.If(form.Errors["form"] != "", P(Class("notice error"), g.Attr("role", "alert"), g.Text(form.Errors["form"]))),
		g.If(form.CSRFField != "", Input(Type("hidden"), Name(form.CSRFField), Value(form.CSRFToken))),
		g.If(form.Product != "", Input(Type("hidden"), Name("product"), Value(form.Product))),
		field(form, "name", "Full Name",
			Input(Type("text"), ID("field-name"), Name("name"), Placeholder("John Doe"), Value(form.Name), Required(), MaxLength("100")),
		),
		field(form, "phone", "Phone Number",
			Input(Type("tel"), ID("field-phone"), Name("phone"), Placeholder("+91..."), Value(form.Phone), Required(), MaxLength("20")),
		),
		field(form, "message", "Message",
			Textarea(ID("field-message"), Name("message"), Rows("4"), MaxLength("2000"),
				Placeholder("Tell us about your project requirements..."), g.Text(form.Message)),
		),
		Button(Type("submit"), Class("btn btn-block"), g.Text("Send Inquiry")),
	)
}

func field(form ContactForm, name, label string, control g.Node) g.Node {
	msg := form.Errors[name]
	return Div(
		Class("field"),
		Label(Class("eyebrow"), For("field-"+name), g.Text(label)),
		control,
		g.If(msg != "", P(Class("field-error error"), g.Text(msg))),
	)
}
