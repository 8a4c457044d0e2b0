package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// URL is the absolute address of the page; empty omits og:url and canonical.
	URL string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Aspire.AI – Your business, on autopilot"
	}

	if config.Description == "" {
		config.Description = "Aspire.AI gives you a digital team that never clocks off. It answers calls, messages customers, follows up leads, sends quotes, and automates the work that slows you down."
	}

	if config.OGImage == "" {
		config.OGImage = AspireLogoURL
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				g.If(config.URL != "", g.Group([]g.Node{
					Meta(g.Attr("property", "og:url"), Content(config.URL)),
					Link(Rel("canonical"), Href(config.URL)),
				})),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen"),
				g.Group(content),

				Script(Src("/static/js/contact-form.js"), Defer()),
			),
		),
	})
}
