package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type service struct {
	ID      string
	Title   string
	Summary string
	Image   string
	Effect  string
}

var services = []service{
	{"dj", "DJ Services", "Music and MC for every kind of celebration.", "/services/dj.jpg", "music"},
	{"lighting", "Event Lighting", "Uplighting, spotlights and dance floor effects.", "/services/lighting.jpg", "light"},
	{"photos", "Photography", "Candid and posed coverage of your event.", "/services/photography.jpg", ""},
	{"smoke", "Smoke & Atmospheric Effects", "Low fog, haze and cold sparks for big moments.", "/services/smoke.jpg", "smoke"},
}

func ServiceCards() g.Node {
	return Section(
		Class("services"),
		ID("services"),
		H2(g.Text("Our Services")),
		Div(
			Class("service-grid"),
			g.Group(g.Map(services, func(s service) g.Node {
				return A(
					Class("service-card"),
					Href("/vendor#"+s.ID),
					Img(Src(s.Image), Alt(s.Title)),
					H3(g.Text(s.Title)),
					P(g.Text(s.Summary)),
				)
			})),
		),
	)
}

func AboutPage() g.Node {
	return Layout(
		PageConfig{Title: "About - Eagle Sounds", Path: "/about"},
		Section(
			Class("page-header"),
			Img(Src("/about/team.jpg"), Alt("The Eagle Sounds team")),
			H1(g.Text("About Eagle Sounds")),
			P(g.Text("A local team of DJs, lighting techs and photographers.")),
		),
	)
}

func VendorPage() g.Node {
	return Layout(
		PageConfig{Title: "Services - Eagle Sounds", Path: "/vendor"},
		Section(
			Class("page-header"),
			H1(g.Text("Services")),
		),
		g.Group(g.Map(services, func(s service) g.Node {
			return Section(
				Class("vendor-section"),
				ID(s.ID),
				g.If(s.Effect != "", g.Attr("data-effect", s.Effect)),
				Img(Src(s.Image), Alt(s.Title)),
				H2(g.Text(s.Title)),
				P(g.Text(s.Summary)),
				A(Class("btn"), Href("/contact"), g.Text("Request a quote")),
			)
		})),
	)
}
