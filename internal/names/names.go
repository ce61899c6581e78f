// Package names derives standards-compliant name-table values from parsed
// filename parts, applying legacy two-name-table compatibility rules and
// PostScript sanitization.
package names

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/styledict"
	"github.com/andrewsipe/FontCore/internal/variable"
)

// Values holds the derived name-table entries. PreferredFamily and
// PreferredSubfamily (IDs 16/17) are empty when the legacy pair already
// expresses the full style.
type Values struct {
	Family             string // name ID 1
	Subfamily          string // name ID 2, always Regular/Bold/Italic/Bold Italic
	PreferredFamily    string // name ID 16
	PreferredSubfamily string // name ID 17
	PostScript         string // name ID 6
}

// FormatError reports a structurally unusable font name: the family segment
// came out empty. It is fatal to the single derivation call and is never
// retried or defaulted.
type FormatError struct {
	Filename string
}

func (e *FormatError) Error() string {
	if e.Filename == "" {
		return "font name has empty family segment"
	}
	return fmt.Sprintf("font name %q has empty family segment", e.Filename)
}

// ribbiSubfamilies are the only values the legacy subfamily slot may hold.
var ribbiSubfamilies = map[string]bool{
	"Regular":     true,
	"Bold":        true,
	"Italic":      true,
	"Bold Italic": true,
}

// Derive computes name-table values for one font. When inst is non-nil the
// instance name replaces the filename style tokens (the family always comes
// from parts). Advisories report sanitization losses; the only error is
// *FormatError.
func Derive(parts parse.Parts, inst *variable.Instance) (Values, []advisory.Advisory, error) {
	var advs []advisory.Advisory

	if inst != nil {
		var instAdvs []advisory.Advisory
		parts, instAdvs = applyInstance(parts, inst)
		advs = append(advs, instAdvs...)
	}

	family := normalizeSpace(parts.Family)
	if family == "" {
		return Values{}, advs, &FormatError{}
	}

	descriptor := joinNonEmpty(parts.Weight.Name, parts.Slant.Name)
	plainStyle := parts.Width.IsZero() && parts.OpticalSize.IsZero() && len(parts.FreeText) == 0

	var v Values
	if plainStyle && (descriptor == "" || ribbiSubfamilies[descriptor]) {
		v.Family = family
		v.Subfamily = descriptor
		if v.Subfamily == "" {
			v.Subfamily = "Regular"
		}
	} else {
		bold := parts.Weight.Name == "Bold"
		italic := parts.Slant.Name == "Italic"

		remainder := make([]string, 0, 4+len(parts.FreeText))
		if !parts.OpticalSize.IsZero() {
			remainder = append(remainder, parts.OpticalSize.Name)
		}
		if !parts.Width.IsZero() {
			remainder = append(remainder, parts.Width.Name)
		}
		// Bold folds into the legacy subfamily and Regular adds nothing, so
		// neither belongs in the legacy family name.
		if !parts.Weight.IsZero() && !bold && parts.Weight.Name != "Regular" {
			remainder = append(remainder, parts.Weight.Name)
		}
		if !parts.Slant.IsZero() && !italic {
			remainder = append(remainder, parts.Slant.Name)
		}
		remainder = append(remainder, parts.FreeText...)

		v.Family = joinNonEmpty(append([]string{family}, remainder...)...)
		v.Subfamily = ribbiFromFlags(bold, italic)
		v.PreferredFamily = family
		v.PreferredSubfamily = joinNonEmpty(parts.StyleTokens()...)
		if v.PreferredSubfamily == "" {
			v.PreferredSubfamily = "Regular"
		}
	}

	ps, psAdvs, err := postScriptName(family, parts.StyleTokens())
	advs = append(advs, psAdvs...)
	if err != nil {
		return Values{}, advs, err
	}
	v.PostScript = ps

	return v, advs, nil
}

// DeriveFile parses a filename and derives its name values in one call,
// stamping the filename into any FormatError.
func DeriveFile(filename string) (Values, []advisory.Advisory, error) {
	parts, advs := parse.ParseDetailed(filename)
	v, deriveAdvs, err := Derive(parts, nil)
	advs = append(advs, deriveAdvs...)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			formatErr.Filename = filename
		}
		return Values{}, advs, err
	}
	return v, advs, nil
}

// applyInstance rebuilds the style slots from a named instance, keeping the
// family (and variable hint) from the filename parts.
func applyInstance(parts parse.Parts, inst *variable.Instance) (parse.Parts, []advisory.Advisory) {
	out := parse.Parts{
		Family:       parts.Family,
		VariableHint: parts.VariableHint,
	}
	var advs []advisory.Advisory

	for _, word := range strings.Fields(inst.Name) {
		matches := styledict.Matches(word)
		if len(matches) == 0 {
			out.FreeText = append(out.FreeText, word)
			continue
		}
		if len(matches) > 1 {
			cats := make([]string, len(matches))
			for i, m := range matches {
				cats[i] = m.Category.String()
			}
			advs = append(advs, advisory.Newf(advisory.Classification, inst.Name,
				"instance token %q matched categories %s; resolved to %s by priority",
				word, strings.Join(cats, ", "), matches[0].Category))
		}
		tok := matches[0]
		var slot *styledict.Token
		switch tok.Category {
		case styledict.Weight:
			slot = &out.Weight
		case styledict.Width:
			slot = &out.Width
		case styledict.OpticalSize:
			slot = &out.OpticalSize
		case styledict.Slant:
			slot = &out.Slant
		}
		if slot != nil && slot.IsZero() {
			*slot = tok
		} else {
			out.FreeText = append(out.FreeText, word)
		}
	}
	return out, advs
}

func ribbiFromFlags(bold, italic bool) string {
	switch {
	case bold && italic:
		return "Bold Italic"
	case bold:
		return "Bold"
	case italic:
		return "Italic"
	}
	return "Regular"
}

// joinNonEmpty joins the non-empty parts with single spaces.
func joinNonEmpty(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := normalizeSpace(p); s != "" {
			fields = append(fields, s)
		}
	}
	return strings.Join(fields, " ")
}

// normalizeSpace trims and collapses internal whitespace.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
