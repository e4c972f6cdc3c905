package templates

import (
	"github.com/a-h/templ"
	"github.com/developerdao/schoolofcode/internal/platform/branding"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HeroMarker is the data-component value carried by the Hero root element.
const HeroMarker = "hero"

// Hero renders the landing page heading. It takes no input.
func Hero() templ.Component {
	return Component(
		h.Section(
			h.Class("hero"),
			g.Attr("data-component", HeroMarker),
			h.H1(h.Class("hero-heading"), g.Text(branding.AppName)),
		),
	)
}
