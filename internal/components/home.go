package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"eaglesounds.in/internal/models"
)

// HeroCarousel renders every slide; the live carousel socket toggles the
// active class and the effect layer of the visible slide.
func HeroCarousel(slides []models.Slide, autoPlay, transition int64) g.Node {
	return Section(
		Class("hero-carousel"),
		ID("hero"),
		g.Attr("data-ws", "/ws/carousel"),
		g.Attr("data-autoplay-ms", strconv.FormatInt(autoPlay, 10)),
		g.Attr("data-transition-ms", strconv.FormatInt(transition, 10)),

		g.Group(g.Map(slides, func(s models.Slide) g.Node {
			return heroSlide(s)
		})),

		Button(Class("carousel-nav prev"), g.Attr("data-action", "prev"), g.Attr("aria-label", "Previous slide"), g.Text("‹")),
		Button(Class("carousel-nav next"), g.Attr("data-action", "next"), g.Attr("aria-label", "Next slide"), g.Text("›")),

		Div(
			Class("carousel-indicators"),
			g.Group(g.Map(slides, func(s models.Slide) g.Node {
				class := "indicator"
				if s.Index == 0 {
					class = "indicator active"
				}
				return Button(
					Class(class),
					g.Attr("data-action", "goto"),
					g.Attr("data-index", strconv.Itoa(s.Index)),
					g.Attr("aria-label", fmt.Sprintf("Go to slide %d", s.Index+1)),
				)
			})),
		),
	)
}

func heroSlide(s models.Slide) g.Node {
	class := "slide"
	if s.Index == 0 {
		class = "slide active"
	}

	return Div(
		Class(class),
		g.Attr("data-index", strconv.Itoa(s.Index)),
		g.If(s.Image != "", Style(fmt.Sprintf("background-image: url(%q)", s.Image))),

		g.If(s.Effect != "" && s.Effect != models.EffectNone, effectLayer(s.Effect)),

		Div(
			Class("slide-content"),
			H1(g.Text(s.Title)),
			P(g.Text(s.Subtitle)),
			A(Class("btn btn-primary"), Href(s.ButtonLink), g.Text(s.ButtonText)),
		),
	)
}

func effectLayer(effect models.EffectType) g.Node {
	if effect == models.EffectSmoke {
		return Div(
			Class("effect-layer effect-smoke"),
			g.Attr("data-effect", string(effect)),
			g.Attr("data-scene", "/api/effects/smoke"),
			g.Attr("data-ws", "/ws/smoke"),
			Canvas(Class("smoke-canvas")),
		)
	}
	return Div(
		Class("effect-layer effect-"+string(effect)),
		g.Attr("data-effect", string(effect)),
		g.Attr("data-scene", "/api/effects/"+string(effect)),
	)
}

func HomePage(slides []models.Slide, autoPlay, transition int64) g.Node {
	return Layout(
		PageConfig{Path: "/"},
		HeroCarousel(slides, autoPlay, transition),
		ServiceCards(),
	)
}
