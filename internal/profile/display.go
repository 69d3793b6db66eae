package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Placeholder is shown for any text field without a usable value.
const Placeholder = "N/A"

// Labels used for presence and boolean fields.
const (
	Uploaded    = "Uploaded"
	NotUploaded = "No file uploaded"
	Yes         = "Yes"
	No          = "No"
)

// Record is a flat profile record as returned by the backend. Values are
// strings, booleans, json.Number or nil. Keys outside the display groups are
// kept but never shown.
type Record map[string]any

// DecodeRecord reads a JSON object into a Record. A literal null yields a nil
// Record and no error.
func DecodeRecord(r io.Reader) (Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode profile record: %w", err)
	}
	return rec, nil
}

// Tone is the visual styling of a rendered value.
type Tone int

const (
	Plain Tone = iota
	Positive
	Negative
	Highlight
)

func (t Tone) String() string {
	switch t {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Highlight:
		return "highlight"
	default:
		return "plain"
	}
}

// PlaceholderPolicy decides which text values count as blank.
type PlaceholderPolicy int

const (
	// BlankFalsy treats missing, null, empty, false and numeric zero as blank.
	BlankFalsy PlaceholderPolicy = iota
	// BlankAbsent treats only missing, null and empty strings as blank.
	BlankAbsent
)

// DisplayField is one rendered label/value pair.
type DisplayField struct {
	Key   string
	Label string
	Value string
	Tone  Tone
}

// DisplayGroup is a rendered group, in the same order as Groups.
type DisplayGroup struct {
	Title  string
	Fields []DisplayField
}

// Build maps a record onto the fixed display groups. A nil record renders
// every field as blank.
func Build(rec Record, policy PlaceholderPolicy) []DisplayGroup {
	out := make([]DisplayGroup, 0, len(groups))
	for _, g := range groups {
		dg := DisplayGroup{Title: g.Title, Fields: make([]DisplayField, 0, len(g.Fields))}
		for _, f := range g.Fields {
			dg.Fields = append(dg.Fields, buildField(f, rec[f.Key], policy))
		}
		out = append(out, dg)
	}
	return out
}

func buildField(f Field, v any, policy PlaceholderPolicy) DisplayField {
	df := DisplayField{Key: f.Key, Label: f.Label}

	switch f.Kind {
	case Presence:
		if flag(v) {
			df.Value, df.Tone = Uploaded, Positive
		} else {
			df.Value, df.Tone = NotUploaded, Negative
		}
	case Boolean:
		if flag(v) {
			df.Value, df.Tone = Yes, Positive
		} else {
			df.Value, df.Tone = No, Negative
		}
	default:
		df.Value = Placeholder
		if !blank(v, policy) {
			df.Value = format(v)
		}
		if f.Kind == Identity {
			df.Tone = Highlight
		}
	}
	return df
}

func blank(v any, policy PlaceholderPolicy) bool {
	if policy == BlankAbsent {
		switch x := v.(type) {
		case nil:
			return true
		case string:
			return x == ""
		default:
			return false
		}
	}
	return !truthy(v)
}

// flag reads a presence or agreement value. Strings that parse as booleans
// ("true", "false", "1", "0") are honoured; anything else falls back to
// truthiness.
func flag(v any) bool {
	if s, ok := v.(string); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return truthy(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(bytes.TrimSpace(b))
}
