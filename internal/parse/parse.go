// Package parse turns font filenames into structured naming parts.
//
// Parsing is total and pure: every string input produces a Parts value,
// there is no I/O, and identical inputs always produce identical results.
// Classification quality issues surface as advisories, never as errors.
package parse

import (
	"strings"

	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/styledict"
)

// Parts is the structured result of parsing one filename. A zero
// styledict.Token means the category was not present in the name.
// Parts values are never mutated after construction.
type Parts struct {
	Family       string
	Weight       styledict.Token
	Width        styledict.Token
	Slant        styledict.Token
	OpticalSize  styledict.Token
	FreeText     []string
	VariableHint bool
}

// StyleTokens returns the canonical style terms of the parts in descriptor
// order: optical size, width, weight, slant, then free text.
func (p Parts) StyleTokens() []string {
	var out []string
	for _, tok := range []styledict.Token{p.OpticalSize, p.Width, p.Weight, p.Slant} {
		if !tok.IsZero() {
			out = append(out, tok.Name)
		}
	}
	return append(out, p.FreeText...)
}

// Parse classifies a filename into naming parts, discarding advisories.
func Parse(filename string) Parts {
	p, _ := ParseDetailed(filename)
	return p
}

// ParseDetailed classifies a filename into naming parts.
//
// The stem is tokenized on explicit separators and lower-to-upper case
// boundaries, then scanned from the end. Tokens that classify against the
// style dictionary (trying adjacent pairs first, so case-split compounds
// like "Extra"+"Condensed" reunite) form the style region; the literal
// variable-font indicators "VF" and "Variable" are consumed into
// VariableHint without occupying a category. The first token that fails to
// classify ends the region and everything before it, joined with single
// spaces and casing preserved, is the family name. A classified token whose
// category is already taken is kept in FreeText in original order.
func ParseDetailed(filename string) (Parts, []advisory.Advisory) {
	tokens := tokenize(stemOf(filename))

	var p Parts
	var advs []advisory.Advisory
	var free []string

	i := len(tokens) - 1
	for i >= 0 {
		tok := tokens[i]
		if isVariableIndicator(tok) {
			p.VariableHint = true
			i--
			continue
		}
		if i > 0 {
			pair := tokens[i-1] + " " + tok
			if matches := styledict.Matches(pair); len(matches) > 0 {
				advs = appendAmbiguity(advs, filename, pair, matches)
				free = assign(&p, matches[0], pair, free)
				i -= 2
				continue
			}
		}
		matches := styledict.Matches(tok)
		if len(matches) == 0 {
			break
		}
		advs = appendAmbiguity(advs, filename, tok, matches)
		free = assign(&p, matches[0], tok, free)
		i--
	}

	p.Family = strings.Join(tokens[:i+1], " ")
	p.FreeText = free
	return p, advs
}

// assign places a classified token into its category slot, or prepends the
// raw text to the free-text list when the slot is already occupied by a
// token closer to the end of the name. Prepending preserves original order
// because the scan runs backward.
func assign(p *Parts, tok styledict.Token, raw string, free []string) []string {
	var slot *styledict.Token
	switch tok.Category {
	case styledict.Weight:
		slot = &p.Weight
	case styledict.Width:
		slot = &p.Width
	case styledict.OpticalSize:
		slot = &p.OpticalSize
	case styledict.Slant:
		slot = &p.Slant
	default:
		return append([]string{raw}, free...)
	}
	if slot.IsZero() {
		*slot = tok
		return free
	}
	return append([]string{raw}, free...)
}

func appendAmbiguity(advs []advisory.Advisory, filename, raw string, matches []styledict.Token) []advisory.Advisory {
	if len(matches) < 2 {
		return advs
	}
	cats := make([]string, len(matches))
	for i, m := range matches {
		cats[i] = m.Category.String()
	}
	return append(advs, advisory.Newf(advisory.Classification, filename,
		"token %q matched categories %s; resolved to %s by priority",
		raw, strings.Join(cats, ", "), matches[0].Category))
}

func isVariableIndicator(token string) bool {
	return strings.EqualFold(token, "VF") || strings.EqualFold(token, "Variable")
}
