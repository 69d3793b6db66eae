package profile

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WriteText prints the display groups as aligned plain text. Values with a
// positive or negative tone get a "+" or "-" marker, identity values a "*".
func WriteText(w io.Writer, dgs []DisplayGroup) error {
	upper := cases.Upper(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, g := range dgs {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		title := upper.String(g.Title)
		fmt.Fprintf(tw, "%s\n%s\n", title, strings.Repeat("=", len(title)))
		for _, f := range g.Fields {
			fmt.Fprintf(tw, "%s\t%s%s\n", f.Label, marker(f.Tone), f.Value)
		}
	}
	return tw.Flush()
}

func marker(t Tone) string {
	switch t {
	case Positive:
		return "+ "
	case Negative:
		return "- "
	case Highlight:
		return "* "
	default:
		return ""
	}
}
