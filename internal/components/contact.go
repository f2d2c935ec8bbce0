package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ContactPage(eventTypes []string) g.Node {
	return Layout(
		PageConfig{Title: "Contact - Eagle Sounds", Path: "/contact"},
		Section(
			Class("page-header"),
			H1(g.Text("Contact Us")),
			P(g.Text("Tell us about your event and we will get back to you.")),
		),
		ContactForm(eventTypes),
	)
}

func ContactForm(eventTypes []string) g.Node {
	return FormEl(
		Class("contact-form"),
		ID("contact-form"),
		Action("/api/contact"),
		Method("post"),

		field("name", "Name", "text", true),
		field("email", "Email", "email", true),
		field("phone", "Phone", "tel", true),

		Label(
			For("eventType"), g.Text("Event Type"),
			Select(
				ID("eventType"), Name("eventType"),
				Option(Value(""), g.Text("Select an event type")),
				g.Group(g.Map(eventTypes, func(t string) g.Node {
					return Option(Value(t), g.Text(strings.ToUpper(t[:1])+t[1:]))
				})),
			),
		),
		field("eventDate", "Event Date", "date", false),

		Label(
			For("message"), g.Text("Message"),
			Textarea(ID("message"), Name("message"), Rows("5"), Required()),
		),

		Div(Class("form-status"), g.Attr("role", "status"), g.Attr("aria-live", "polite")),
		Button(Type("submit"), Class("btn btn-primary"), g.Text("Send Message")),
	)
}

func field(name, label, kind string, required bool) g.Node {
	return Label(
		For(name), g.Text(label),
		Input(ID(name), Name(name), Type(kind), g.If(required, Required())),
	)
}
