package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/profileview/web/src/templates/partials"
)

// htmxSrc is the htmx build the pages are written against.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the full HTML document.
func Base(title string, flashes partials.FlashData, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/profile.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
			),
			g.Body(
				partials.Notifications(flashes, false),
				g.Main(g.Class("container"), content),
			),
		),
	)
}
