package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/profileview/internal/profile"
)

// ProfileContentID is the element the loading indicator is swapped into.
const ProfileContentID = "profile-content"

// Loading is the pending state of the profile view. It shows only the loading
// indicator and asks htmx to fetch detailsURL once, replacing itself with the
// response.
func Loading(detailsURL string) cmp.Node {
	return g.Div(
		g.ID(ProfileContentID),
		g.Class("loading"),
		g.Role("progressbar"),
		g.Aria("busy", "true"),
		hx.Get(detailsURL),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		g.Span(g.Class("spinner")),
		g.Span(g.Class("sr-only"), cmp.Text("Loading profile…")),
	)
}

// ProfileDetails renders the display groups in order.
func ProfileDetails(groups []profile.DisplayGroup) cmp.Node {
	return g.Div(
		g.ID(ProfileContentID),
		g.Class("profile"),
		g.H1(g.Class("profile-title"), cmp.Text("My Profile")),
		cmp.Map(groups, group),
	)
}

func group(dg profile.DisplayGroup) cmp.Node {
	return g.Section(
		g.Class("profile-group"),
		g.H2(cmp.Text(dg.Title)),
		g.Dl(cmp.Map(dg.Fields, field)),
	)
}

func field(f profile.DisplayField) cmp.Node {
	return g.Div(
		g.Class("profile-field"),
		g.Data("field", f.Key),
		g.Dt(cmp.Text(f.Label)),
		g.Dd(g.Class("value value-"+f.Tone.String()), cmp.Text(f.Value)),
	)
}

// EmptyState is shown when no profile record is available.
func EmptyState() cmp.Node {
	return g.Div(
		g.ID(ProfileContentID),
		g.Class("profile-empty"),
		g.H1(cmp.Text("My Profile")),
		g.P(cmp.Text("No profile information is available right now.")),
		g.A(g.Href("/profile"), g.Class("button"), cmp.Text("Try again")),
	)
}
