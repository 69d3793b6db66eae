package profile_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfrund/profileview/internal/profile"
	"github.com/nfrund/profileview/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body any) profile.Record {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec, err := profile.DecodeRecord(bytes.NewReader(raw))
	require.NoError(t, err)
	return rec
}

func field(t *testing.T, dgs []profile.DisplayGroup, key string) profile.DisplayField {
	t.Helper()
	for _, g := range dgs {
		for _, f := range g.Fields {
			if f.Key == key {
				return f
			}
		}
	}
	t.Fatalf("field %q not rendered", key)
	return profile.DisplayField{}
}

func TestGroups(t *testing.T) {
	gs := profile.Groups()

	titles := make([]string, 0, len(gs))
	for _, g := range gs {
		titles = append(titles, g.Title)
	}
	assert.Equal(t, []string{
		"Personal Details",
		"Exam Preferences",
		"Experience",
		"Documents",
		"Bank Details",
		"Health Declaration",
		"Agreements",
	}, titles)

	counts := map[string]map[profile.FieldKind]int{}
	for _, g := range gs {
		counts[g.Title] = map[profile.FieldKind]int{}
		for _, f := range g.Fields {
			counts[g.Title][f.Kind]++
		}
	}
	assert.Equal(t, map[profile.FieldKind]int{profile.Text: 9}, counts["Personal Details"])
	assert.Equal(t, map[profile.FieldKind]int{profile.Text: 2}, counts["Exam Preferences"])
	assert.Equal(t, map[profile.FieldKind]int{profile.Text: 3}, counts["Experience"])
	assert.Equal(t, map[profile.FieldKind]int{profile.Presence: 3, profile.Identity: 1}, counts["Documents"])
	assert.Equal(t, map[profile.FieldKind]int{profile.Text: 5}, counts["Bank Details"])
	assert.Equal(t, map[profile.FieldKind]int{profile.Text: 7, profile.Boolean: 1}, counts["Health Declaration"])
	assert.Equal(t, map[profile.FieldKind]int{profile.Boolean: 1}, counts["Agreements"])
}

func TestGroups_ReturnsCopy(t *testing.T) {
	gs := profile.Groups()
	gs[0].Title = "changed"
	gs[0].Fields[0].Label = "changed"

	fresh := profile.Groups()
	assert.Equal(t, "Personal Details", fresh[0].Title)
	assert.Equal(t, "Full Name", fresh[0].Fields[0].Label)
}

func TestGroups_KeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range profile.Groups() {
		for _, f := range g.Fields {
			assert.False(t, seen[f.Key], "duplicate key %q", f.Key)
			seen[f.Key] = true
		}
	}
}

func TestBuild_FullRecord(t *testing.T) {
	body := testutils.FullProfile()
	dgs := profile.Build(decode(t, body), profile.BlankFalsy)

	require.Len(t, dgs, 7)
	for i, g := range profile.Groups() {
		assert.Equal(t, g.Title, dgs[i].Title)
		require.Len(t, dgs[i].Fields, len(g.Fields))
		for j, f := range g.Fields {
			got := dgs[i].Fields[j]
			assert.Equal(t, f.Label, got.Label)
			if f.Kind == profile.Text || f.Kind == profile.Identity {
				assert.Equal(t, body[f.Key], got.Value, "field %s", f.Key)
			}
		}
	}
	assert.Equal(t, profile.Highlight, field(t, dgs, "aadhaarNumber").Tone)
}

func TestBuild_MissingEmail(t *testing.T) {
	body := testutils.FullProfile()
	delete(body, "email")
	dgs := profile.Build(decode(t, body), profile.BlankFalsy)

	personal := dgs[0]
	require.Equal(t, "Personal Details", personal.Title)
	for _, f := range personal.Fields {
		if f.Key == "email" {
			assert.Equal(t, profile.Placeholder, f.Value)
			continue
		}
		assert.Equal(t, body[f.Key], f.Value)
	}
}

func TestBuild_Placeholder(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		policy profile.PlaceholderPolicy
		want   string
	}{
		{"empty string", "", profile.BlankFalsy, profile.Placeholder},
		{"null", nil, profile.BlankFalsy, profile.Placeholder},
		{"false", false, profile.BlankFalsy, profile.Placeholder},
		{"zero", 0, profile.BlankFalsy, profile.Placeholder},
		{"string zero is kept", "0", profile.BlankFalsy, "0"},
		{"number", 7, profile.BlankFalsy, "7"},
		{"decimal", 58.5, profile.BlankFalsy, "58.5"},
		{"strict empty string", "", profile.BlankAbsent, profile.Placeholder},
		{"strict null", nil, profile.BlankAbsent, profile.Placeholder},
		{"strict false", false, profile.BlankAbsent, "false"},
		{"strict zero", 0, profile.BlankAbsent, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decode(t, map[string]any{"yearsOfExperience": tt.value})
			dgs := profile.Build(rec, tt.policy)
			assert.Equal(t, tt.want, field(t, dgs, "yearsOfExperience").Value)
		})
	}

	t.Run("absent key", func(t *testing.T) {
		for _, policy := range []profile.PlaceholderPolicy{profile.BlankFalsy, profile.BlankAbsent} {
			dgs := profile.Build(profile.Record{}, policy)
			assert.Equal(t, profile.Placeholder, field(t, dgs, "fullName").Value)
			assert.Equal(t, profile.Placeholder, field(t, dgs, "aadhaarNumber").Value)
		}
	})
}

func TestBuild_PresenceFlags(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		tone  profile.Tone
	}{
		{"true", true, profile.Uploaded, profile.Positive},
		{"file reference", "uploads/photo.jpg", profile.Uploaded, profile.Positive},
		{"false", false, profile.NotUploaded, profile.Negative},
		{"string false", "false", profile.NotUploaded, profile.Negative},
		{"empty", "", profile.NotUploaded, profile.Negative},
		{"null", nil, profile.NotUploaded, profile.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"photo", "signature", "idProof"} {
				dgs := profile.Build(decode(t, map[string]any{key: tt.value}), profile.BlankFalsy)
				got := field(t, dgs, key)
				assert.Equal(t, tt.want, got.Value, key)
				assert.Equal(t, tt.tone, got.Tone, key)
			}
		})
	}

	t.Run("absent", func(t *testing.T) {
		got := field(t, profile.Build(profile.Record{}, profile.BlankFalsy), "photo")
		assert.Equal(t, profile.NotUploaded, got.Value)
		assert.Equal(t, profile.Negative, got.Tone)
	})
}

func TestBuild_BooleanAgreements(t *testing.T) {
	for _, key := range []string{"covidDeclaration", "penaltyClause"} {
		t.Run(key, func(t *testing.T) {
			yes := field(t, profile.Build(decode(t, map[string]any{key: true}), profile.BlankFalsy), key)
			assert.Equal(t, profile.Yes, yes.Value)
			assert.Equal(t, profile.Positive, yes.Tone)

			no := field(t, profile.Build(decode(t, map[string]any{key: false}), profile.BlankFalsy), key)
			assert.Equal(t, profile.No, no.Value)
			assert.Equal(t, profile.Negative, no.Tone)

			absent := field(t, profile.Build(profile.Record{}, profile.BlankFalsy), key)
			assert.Equal(t, profile.No, absent.Value)
			assert.Equal(t, profile.Negative, absent.Tone)
		})
	}
}

func TestBuild_IgnoresUnknownFields(t *testing.T) {
	body := testutils.FullProfile()
	body["internalScore"] = 99
	dgs := profile.Build(decode(t, body), profile.BlankFalsy)

	for _, g := range dgs {
		for _, f := range g.Fields {
			assert.NotEqual(t, "internalScore", f.Key)
		}
	}
}

func TestDecodeRecord(t *testing.T) {
	t.Run("null body", func(t *testing.T) {
		rec, err := profile.DecodeRecord(strings.NewReader("null"))
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := profile.DecodeRecord(strings.NewReader(`["a"]`))
		assert.Error(t, err)
	})

	t.Run("numbers keep their text", func(t *testing.T) {
		rec, err := profile.DecodeRecord(strings.NewReader(`{"accountNumber": 12345678901234567890}`))
		require.NoError(t, err)
		dgs := profile.Build(rec, profile.BlankFalsy)
		assert.Equal(t, "12345678901234567890", field(t, dgs, "accountNumber").Value)
	})
}

func TestWriteText(t *testing.T) {
	dgs := profile.Build(decode(t, testutils.FullProfile()), profile.BlankFalsy)

	var buf bytes.Buffer
	require.NoError(t, profile.WriteText(&buf, dgs))
	out := buf.String()

	assert.Contains(t, out, "PERSONAL DETAILS")
	assert.Contains(t, out, "AGREEMENTS")
	assert.Contains(t, out, "asha@example.com")
	assert.Contains(t, out, "+ Uploaded")
	assert.Contains(t, out, "* 1234-5678-9012")
	assert.Less(t, strings.Index(out, "PERSONAL DETAILS"), strings.Index(out, "EXAM PREFERENCES"))
}
