package partials

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// FlashRegionID is the element id of the notification region in the layout.
const FlashRegionID = "flash-messages"

// FlashData holds the notifications to show on the next render.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// Notifications renders the notification region. When oob is true the region
// is marked for an htmx out-of-band swap so fragment responses can update it.
func Notifications(flashes FlashData, oob bool) cmp.Node {
	return g.Div(
		g.ID(FlashRegionID),
		g.Class("notifications"),
		g.Role("status"),
		g.Aria("live", "polite"),
		cmp.If(oob, hx.SwapOOB("true")),
		cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return g.Div(g.Class("notification notification-error"), g.Role("alert"), cmp.Text(msg))
		}),
		cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return g.Div(g.Class("notification notification-success"), cmp.Text(msg))
		}),
	)
}
