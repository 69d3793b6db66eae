package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Login is the landing view for visitors without a valid session. Sign-in
// itself happens at signInURL, owned by the auth service.
func Login(signInURL string) cmp.Node {
	return g.Div(
		g.Class("login"),
		g.H1(cmp.Text("Sign in required")),
		g.P(cmp.Text("Please sign in to view your profile.")),
		cmp.If(signInURL != "",
			g.A(g.Href(signInURL), g.Class("button"), cmp.Text("Sign in")),
		),
	)
}
