package names

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/variable"
)

func TestDeriveRIBBI(t *testing.T) {
	cases := []struct {
		filename string
		want     Values
	}{
		{
			filename: "Arial-BoldItalic.ttf",
			want: Values{
				Family:     "Arial",
				Subfamily:  "Bold Italic",
				PostScript: "Arial-BoldItalic",
			},
		},
		{
			filename: "Arial-Regular.ttf",
			want: Values{
				Family:     "Arial",
				Subfamily:  "Regular",
				PostScript: "Arial-Regular",
			},
		},
		{
			filename: "Georgia.ttf",
			want: Values{
				Family:     "Georgia",
				Subfamily:  "Regular",
				PostScript: "Georgia",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			got, advs, err := DeriveFile(tc.filename)
			require.NoError(t, err)
			assert.Empty(t, advs)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveNonRIBBI(t *testing.T) {
	cases := []struct {
		filename string
		want     Values
	}{
		{
			// Non-RIBBI weight moves into the legacy family.
			filename: "Lato-SemiBold.ttf",
			want: Values{
				Family:             "Lato SemiBold",
				Subfamily:          "Regular",
				PreferredFamily:    "Lato",
				PreferredSubfamily: "SemiBold",
				PostScript:         "Lato-SemiBold",
			},
		},
		{
			// Width joins the legacy family, Bold stays in the subfamily.
			filename: "Roboto-CondensedBoldItalic.ttf",
			want: Values{
				Family:             "Roboto Condensed",
				Subfamily:          "Bold Italic",
				PreferredFamily:    "Roboto",
				PreferredSubfamily: "Condensed Bold Italic",
				PostScript:         "Roboto-CondensedBoldItalic",
			},
		},
		{
			// An explicit Regular weight stays out of the legacy family.
			filename: "Acme-CondensedRegular.ttf",
			want: Values{
				Family:             "Acme Condensed",
				Subfamily:          "Regular",
				PreferredFamily:    "Acme",
				PreferredSubfamily: "Condensed Regular",
				PostScript:         "Acme-CondensedRegular",
			},
		},
		{
			filename: "Source Serif Display Light.otf",
			want: Values{
				Family:             "Source Serif Display Light",
				Subfamily:          "Regular",
				PreferredFamily:    "Source Serif",
				PreferredSubfamily: "Display Light",
				PostScript:         "SourceSerif-DisplayLight",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			got, _, err := DeriveFile(tc.filename)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveEmptyFamilyFails(t *testing.T) {
	_, _, err := DeriveFile("-Italic.ttf")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "-Italic.ttf", formatErr.Filename)
}

func TestDeriveInstanceOverridesFilenameStyle(t *testing.T) {
	parts := parse.Parse("Inter-BoldVF.ttf")
	require.Equal(t, "Bold", parts.Weight.Name)

	inst := &variable.Instance{Name: "Condensed ExtraBold Italic"}
	got, advs, err := Derive(parts, inst)
	require.NoError(t, err)
	assert.Empty(t, advs)
	assert.Equal(t, Values{
		Family:             "Inter Condensed ExtraBold",
		Subfamily:          "Italic",
		PreferredFamily:    "Inter",
		PreferredSubfamily: "Condensed ExtraBold Italic",
		PostScript:         "Inter-CondensedExtraBoldItalic",
	}, got)
}

func TestDeriveInstanceUnknownWordsBecomeFreeText(t *testing.T) {
	parts := parse.Parse("Brand-Variable.ttf")
	inst := &variable.Instance{Name: "Display Text Bold"}
	got, _, err := Derive(parts, inst)
	require.NoError(t, err)
	// "Display" is an optical size, "Bold" a weight, "Text" also an optical
	// size but the slot is taken so it survives verbatim.
	assert.Equal(t, "Display Bold Text", got.PreferredSubfamily)
}

func TestFormatErrorMessage(t *testing.T) {
	var err error = &FormatError{Filename: "x.ttf"}
	assert.Contains(t, err.Error(), "x.ttf")
	assert.True(t, errors.As(err, new(*FormatError)))
}

func TestStripVariableTokens(t *testing.T) {
	cases := map[string]string{
		"Inter Variable":        "Inter",
		"Brand Sans VF":         "Brand Sans",
		"Skia GX Regular":       "Skia Regular",
		"Decovar Flex":          "Decovar",
		"vf at the start":       "at the start",
		"Verflixt":              "Verflixt",
		"Inter":                 "Inter",
		"Variable VF  Variable": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripVariableTokens(in), "input %q", in)
	}
}

func TestFlags(t *testing.T) {
	cases := []struct {
		subfamily string
		fsSel     uint16
		mac       uint16
	}{
		{"Regular", fsSelectionRegular, 0},
		{"Bold", fsSelectionBold, macStyleBold},
		{"Italic", fsSelectionItalic, macStyleItalic},
		{"Bold Italic", fsSelectionBold | fsSelectionItalic, macStyleBold | macStyleItalic},
		{"anything else", fsSelectionRegular, 0},
	}
	for _, tc := range cases {
		fsSel, mac := Flags(tc.subfamily)
		assert.Equal(t, tc.fsSel, fsSel, "fsSelection for %q", tc.subfamily)
		assert.Equal(t, tc.mac, mac, "macStyle for %q", tc.subfamily)
	}
}
