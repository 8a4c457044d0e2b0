package components

import (
	"strings"
	"unicode"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	AspireLogoURL      = "https://raw.githubusercontent.com/scottyowen4683/Aspirereception/refs/heads/feature/ai-receptionist/frontend/aspire.png"
	DemoNumber         = "+61 7 4357 2749"
	BookingURL         = "https://calendly.com/scott-owen-aspire/ai-receptionist-demo"
	ExecutiveSearchURL = "https://aspireexecutive.com.au"
	ContactEmail       = "scott@aspireexecutive.com.au"
)

type navLink struct {
	Href  string
	Label string
}

var sectionLinks = []navLink{
	{"#about", "About"},
	{"#services", "Services"},
	{"#automations", "Automations"},
	{"#features", "Features"},
	{"#pricing", "Pricing"},
	{"#contact", "Contact"},
}

// TelHref builds a tel: link with all whitespace removed from number.
func TelHref(number string) string {
	return "tel:" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
}

func Logo(size string) g.Node {
	return Img(Src(AspireLogoURL), Alt("Aspire.AI"), Class(size+" w-auto"))
}

func Icon(name, classes string) g.Node {
	return Span(
		Class("iconify inline-block "+classes),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

type Feature struct {
	Icon  string
	Title string
	Text  string
}

func FeatureCard(f Feature) g.Node {
	return Div(
		Class("rounded-2xl border-2 border-slate-200 hover:border-blue-600 transition-all hover:shadow-xl group bg-white p-6"),
		Div(
			Class("bg-blue-100 w-14 h-14 rounded-xl flex items-center justify-center mb-4 group-hover:bg-blue-600 transition-colors"),
			Icon(f.Icon, "h-7 w-7 text-blue-600 group-hover:text-white transition-colors"),
		),
		H3(Class("text-xl font-bold text-slate-900 mb-2"), g.Text(f.Title)),
		P(Class("text-slate-600 text-sm"), g.Text(f.Text)),
	)
}

func featureGrid(features []Feature) g.Node {
	return Div(
		Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
		g.Group(g.Map(features, FeatureCard)),
	)
}

type PricingPackage struct {
	Name        string
	Price       string
	Features    []string
	Highlighted bool
}

func PackageCard(p PricingPackage) g.Node {
	classes := "rounded-2xl p-6 border border-slate-200 bg-white"
	if p.Highlighted {
		classes = "rounded-2xl p-6 border border-blue-300 bg-blue-50"
	}
	return Div(
		Class(classes),
		P(Class("text-sm font-semibold"), g.Text(p.Name)),
		P(Class("mt-2 text-3xl font-extrabold"), g.Text(p.Price)),
		Ul(
			Class("mt-4 space-y-2 text-sm text-slate-700"),
			g.Group(g.Map(p.Features, func(f string) g.Node {
				return Li(g.Text("• " + f))
			})),
		),
		A(
			Href("#contact"),
			Class("mt-6 inline-block rounded-xl px-4 py-2 text-white font-semibold bg-blue-600 hover:bg-blue-700"),
			g.Text("Contact Us Now"),
		),
	)
}
