package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Path        string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Eagle Sounds - DJ, Lighting, Photography & Effects"
	}

	if config.Description == "" {
		config.Description = "Event entertainment for weddings, birthdays, corporate and college events."
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
				Meta(g.Attr("property", "og:image"), Content("/social/og-image.jpg")),

				Link(Rel("icon"), Href("/favicon.ico")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Navbar(config.Path),
				Main(g.Group(content)),
				PageFooter(),

				Script(Type("module"), Src("/static/js/site.js")),
			),
		),
	})
}

var navLinks = []struct {
	Href  string
	Label string
}{
	{"/", "Home"},
	{"/about", "About"},
	{"/vendor", "Services"},
	{"/contact", "Contact"},
}

func Navbar(current string) g.Node {
	return Nav(
		Class("navbar"),
		A(Class("navbar-brand"), Href("/"),
			Img(Src("/eagle-logo.png"), Alt("Eagle Sounds"), Class("logo")),
		),
		Ul(
			Class("navbar-links"),
			g.Group(g.Map(navLinks, func(link struct {
				Href  string
				Label string
			}) g.Node {
				return Li(
					A(
						Href(link.Href),
						g.If(link.Href == current, Class("active")),
						g.Text(link.Label),
					),
				)
			})),
		),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		P(g.Text("Eagle Sounds - DJ, lighting, photography and atmospheric effects.")),
		P(A(Href("/contact"), g.Text("Get a quote"))),
	)
}
