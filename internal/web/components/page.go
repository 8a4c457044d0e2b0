package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(year int) g.Node {
	return Footer(
		Class("bg-slate-900 text-slate-400 py-8 border-t border-slate-800"),
		Div(
			Class("container mx-auto px-6 flex flex-col md:flex-row justify-between items-center gap-4"),
			Div(
				Class("flex items-center gap-3"),
				Logo("h-8"),
				Span(
					Class("text-sm"),
					g.Text(fmt.Sprintf("© %d Aspire.AI — Powered by Aspire Executive Solutions.", year)),
				),
			),
			Div(
				Class("flex gap-6"),
				g.Group(g.Map(sectionLinks, func(l navLink) g.Node {
					return A(Href(l.Href), Class("hover:text-white"), g.Text(l.Label))
				})),
			),
		),
	)
}

// LandingData carries the per-request inputs of the landing page.
type LandingData struct {
	Year       int
	SiteURL    string
	Form       ContactFormView
	ChatWidget ChatWidgetConfig
}

// LandingPage composes the full document. Each call owns a fresh script
// registry, so the chat widget is emitted at most once per page.
func LandingPage(data LandingData) g.Node {
	scripts := NewScriptRegistry()

	var page PageConfig
	if data.SiteURL != "" {
		page.URL = strings.TrimRight(data.SiteURL, "/") + "/"
	}

	return Layout(
		page,
		SiteHeader(),
		HeroSection(),
		AboutSection(),
		ServicesSection(),
		AutomationsSection(),
		FeaturesSection(),
		PricingSection(),
		ContactSection(data.Form),
		PageFooter(data.Year),
		ChatWidget(scripts, data.ChatWidget),
	)
}
