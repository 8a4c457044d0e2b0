package components

import (
	"github.com/aspireai/aspire-site/internal/contact"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactFormView is the render state of the contact form.
type ContactFormView struct {
	Action       string
	Fields       contact.Submission
	Submitting   bool
	Notification *contact.Notification
}

const inputClass = "w-full bg-white/10 border border-white/20 rounded-md px-3 py-2 text-white placeholder:text-blue-200"

func ContactSection(view ContactFormView) g.Node {
	return Section(
		ID("contact"),
		Class("py-20 bg-gradient-to-br from-slate-900 to-blue-900 text-white"),
		Div(
			Class("container mx-auto px-6 max-w-6xl"),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-4xl font-bold mb-4"), g.Text("Ready to Automate Your Business?")),
				P(Class("text-xl text-blue-100"), g.Text("Let Aspire.AI handle the calls, follow-ups, and admin — so you can focus on growth.")),
			),
			Div(
				Class("grid md:grid-cols-2 gap-12"),
				contactInfo(),
				Div(
					g.Iff(view.Notification != nil, func() g.Node { return notificationBanner(view.Notification) }),
					ContactForm(view),
				),
			),
		),
	)
}

func contactInfo() g.Node {
	return Div(
		H3(Class("text-2xl font-bold mb-6"), g.Text("Contact Information")),
		Div(
			Class("space-y-6"),
			infoRow("mail", "Email Us", A(
				Href("mailto:"+ContactEmail),
				Class("text-blue-200 hover:text-white transition-colors"),
				g.Text(ContactEmail),
			)),
			infoRow("map-pin", "Location", P(Class("text-blue-200"), g.Text("Australia"))),
			infoRow("external-link", "Executive Services", A(
				Href(ExecutiveSearchURL),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class("text-blue-200 hover:text-white transition-colors"),
				g.Text("aspireexecutive.com.au"),
			)),
		),
	)
}

func infoRow(icon, heading string, body g.Node) g.Node {
	return Div(
		Class("flex items-start gap-4"),
		Div(
			Class("bg-blue-600 w-12 h-12 rounded-lg flex items-center justify-center flex-shrink-0"),
			Icon(icon, "h-6 w-6"),
		),
		Div(
			P(Class("font-semibold mb-1"), g.Text(heading)),
			body,
		),
	)
}

func notificationBanner(n *contact.Notification) g.Node {
	classes := "mb-4 rounded-md px-4 py-3 bg-green-600/90"
	if n.Kind == contact.NotificationError {
		classes = "mb-4 rounded-md px-4 py-3 bg-red-600/90"
	}
	return Div(
		ID("contact-notification"),
		Class(classes),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Attr("data-kind", string(n.Kind)),
		P(Class("font-semibold"), g.Text(n.Title)),
		P(Class("text-sm"), g.Text(n.Description)),
	)
}

// ContactForm renders the inputs with their current values. The submit
// control is disabled while a submission is in flight.
func ContactForm(view ContactFormView) g.Node {
	action := view.Action
	if action == "" {
		action = "/contact#contact"
	}
	label := "Send Message"
	if view.Submitting {
		label = "Sending..."
	}

	return Form(
		ID("contact-form"),
		Method("post"),
		Action(action),
		Class("space-y-4"),
		Input(
			Name(string(contact.FieldName)),
			Placeholder("Your Name"),
			Value(view.Fields.Name),
			Required(),
			Class(inputClass),
		),
		Input(
			Name(string(contact.FieldEmail)),
			Type("email"),
			Placeholder("Your Email"),
			Value(view.Fields.Email),
			Required(),
			Class(inputClass),
		),
		Input(
			Name(string(contact.FieldPhone)),
			Type("tel"),
			Placeholder("Phone Number"),
			Value(view.Fields.Phone),
			Class(inputClass),
		),
		Textarea(
			Name(string(contact.FieldMessage)),
			Placeholder("Tell us about your needs..."),
			Required(),
			g.Attr("rows", "4"),
			Class(inputClass),
			g.Text(view.Fields.Message),
		),
		Button(
			Type("submit"),
			g.If(view.Submitting, Disabled()),
			Class("w-full bg-blue-600 hover:bg-blue-700 text-white rounded-md px-4 py-3 font-medium"),
			g.Text(label),
		),
	)
}
