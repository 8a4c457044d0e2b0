package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteHeader() g.Node {
	return Header(
		Class("fixed top-0 w-full bg-white/95 backdrop-blur-sm border-b border-slate-200 z-50"),
		Div(
			Class("container mx-auto px-6 py-4 flex justify-between items-center"),
			Logo("h-12"),
			Nav(
				Class("hidden md:flex gap-8 items-center"),
				g.Group(g.Map(sectionLinks, func(l navLink) g.Node {
					return A(
						Href(l.Href),
						Class("text-slate-700 hover:text-blue-600 transition-colors font-medium"),
						g.Text(l.Label),
					)
				})),
				A(
					Href(ExecutiveSearchURL),
					Target("_blank"),
					Rel("noopener noreferrer"),
					Class("text-slate-700 hover:text-blue-600 transition-colors font-medium flex items-center gap-1"),
					g.Text("Executive Search "),
					Icon("external-link", "h-3 w-3"),
				),
			),
		),
	)
}

func HeroSection() g.Node {
	return Section(
		Class("pt-32 pb-16 bg-gradient-to-br from-slate-50 to-blue-50"),
		Div(
			Class("container mx-auto px-6 text-center max-w-5xl"),
			H1(
				Class("text-5xl md:text-6xl font-bold mb-6 leading-tight"),
				Span(Class("block text-slate-900"), g.Text("Your business, on autopilot.")),
				Span(Class("block text-blue-600 mt-1"), g.Text("AI that works like your best employee.")),
			),
			P(
				Class("text-xl text-slate-700 mb-8 leading-relaxed max-w-3xl mx-auto"),
				g.Text("Aspire.AI gives you a digital team that never clocks off. It answers calls, messages customers, follows up leads, sends quotes, and automates the work that slows you down."),
			),
			Div(
				Class("flex gap-4 justify-center flex-wrap"),
				A(
					Href(BookingURL),
					Class("bg-blue-600 hover:bg-blue-700 text-white px-8 py-3 text-lg rounded-md"),
					g.Text("Book a Demo"),
				),
				A(
					Href(TelHref(DemoNumber)),
					Class("border-2 border-blue-600 text-blue-600 hover:bg-blue-50 px-8 py-3 text-lg rounded-md flex items-center gap-2"),
					Icon("phone", "h-5 w-5"),
					g.Text("Call the AI Demo: "+DemoNumber),
				),
			),
		),
	)
}

func AboutSection() g.Node {
	return Section(
		ID("about"),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-6 max-w-4xl text-center"),
			H2(Class("text-4xl font-bold text-slate-900 mb-4"), g.Text("AI that helps small businesses work smarter")),
			P(
				Class("text-lg text-slate-700 mb-6"),
				g.Text("Aspire.AI builds intelligent reception and automation systems for businesses of all sizes — so owners can save time, reduce admin, and never miss a customer again."),
			),
		),
	)
}

var services = []Feature{
	{"clock", "Always On", "Answers calls and messages instantly — 24/7."},
	{"dollar-sign", "Cost-Effective", "Save thousands a month compared with extra staff."},
	{"zap", "Up and Running Fast", "Go live in days, not months."},
	{"phone", "Dependable", "Consistent, professional responses every time."},
}

func ServicesSection() g.Node {
	return Section(
		ID("services"),
		Class("py-20 bg-gradient-to-br from-blue-50 to-slate-50"),
		Div(
			Class("container mx-auto px-6 max-w-6xl text-center"),
			H2(Class("text-4xl font-bold text-slate-900 mb-4"), g.Text("Smart Business Automation")),
			P(Class("text-xl text-slate-600 mb-12"), g.Text("Turn missed calls and admin tasks into booked jobs and repeat customers.")),
			featureGrid(services),
		),
	)
}

type automation struct {
	Title       string
	Description string
}

var automations = []automation{
	{"💬 Instant Quotes", "AI captures job details and emails or texts a quote automatically."},
	{"📧 Auto Follow-Ups", "Sends reminders for missed calls or unanswered quotes."},
	{"💳 Invoicing & Payments", "Creates invoices and payment links through Xero or Stripe."},
	{"⭐ Review & Referral Boost", "Requests Google reviews and tracks new referrals."},
	{"📅 Smart Scheduling", "Books and reschedules jobs across your team calendar."},
	{"📈 Weekly Summary", "Email digest of new leads, bookings, and revenue captured."},
	{"🧠 Lead Scoring", "Ranks new enquiries so you focus on high-value customers."},
	{"🔗 Integrations", "Connects to Gmail, Outlook, Google Sheets, or your CRM."},
}

func AutomationsSection() g.Node {
	return Section(
		ID("automations"),
		Class("py-20 bg-gradient-to-br from-blue-600 to-indigo-600 text-white"),
		Div(
			Class("container mx-auto px-6 max-w-6xl text-center"),
			H2(Class("text-4xl font-bold mb-6"), g.Text("Smart Automations That Do the Work for You")),
			P(
				Class("text-lg mb-12 text-blue-100"),
				g.Text("Behind the scenes, Aspire.AI connects the dots between your phone, CRM, email, and payment systems — so things just happen automatically."),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6 text-left"),
				g.Group(g.Map(automations, func(a automation) g.Node {
					return Div(
						Class("bg-white/10 rounded-2xl p-6 hover:bg-white/20 transition-all"),
						H3(Class("text-xl font-semibold mb-2"), g.Text(a.Title)),
						P(Class("text-blue-100 text-sm"), g.Text(a.Description)),
					)
				})),
			),
		),
	)
}

var advancedFeatures = []Feature{
	{"shield-check", "Data Compliance", "Privacy Act 1988 & APP aligned. Australian data residency."},
	{"plug-zap", "Seamless Integration", "Connects easily with your existing tools and CRMs."},
	{"message-square", "Voice + Chat AI", "Unified inbound experience via phone and website chat."},
	{"file-text", "Full Transcripts", "Access full conversation transcripts for quality and insight."},
}

func FeaturesSection() g.Node {
	return Section(
		ID("features"),
		Class("py-16 bg-gradient-to-br from-blue-50 to-slate-50"),
		Div(
			Class("container mx-auto px-6 text-center max-w-6xl"),
			H2(Class("text-4xl font-bold text-slate-900 mb-4"), g.Text("Advanced Features")),
			featureGrid(advancedFeatures),
		),
	)
}

var packages = []PricingPackage{
	{
		Name:     "Starter",
		Price:    "$1,500 / mo",
		Features: []string{"1 AI receptionist (voice or chat)", "Smart follow-ups", "Basic dashboard"},
	},
	{
		Name:        "Growth",
		Price:       "$2,500 / mo",
		Features:    []string{"Voice + chat agents", "Automations (quotes, reminders, reviews)", "Integrations & reporting"},
		Highlighted: true,
	},
	{
		Name:     "Pro",
		Price:    "$3,500+ / mo",
		Features: []string{"Multi-location or custom workflows", "Full automation suite", "Dedicated support"},
	},
}

func PricingSection() g.Node {
	return Section(
		ID("pricing"),
		Class("py-16 bg-gradient-to-br from-blue-50 to-slate-50"),
		Div(
			Class("container mx-auto px-6 max-w-6xl text-center"),
			H2(Class("text-3xl font-bold text-slate-900 mb-2"), g.Text("Pricing & Packages")),
			Div(
				Class("grid md:grid-cols-3 gap-6 mt-8"),
				g.Group(g.Map(packages, PackageCard)),
			),
		),
	)
}
