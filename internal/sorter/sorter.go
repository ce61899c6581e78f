// Package sorter imposes a total order over classified font collections and
// groups them into families and superfamilies.
package sorter

import (
	"iter"
	"sort"
	"strings"

	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/variable"
)

// FontInfo couples a font path with its classified parts and axis structure.
// Values are never mutated after construction.
type FontInfo struct {
	Path       string
	Parts      parse.Parts
	Axes       []variable.Axis
	IsVariable bool
}

// NewFontInfo builds a FontInfo. Variability is derived from the axis list
// alone so the two fields cannot disagree.
func NewFontInfo(path string, parts parse.Parts, axes []variable.Axis) FontInfo {
	return FontInfo{
		Path:       path,
		Parts:      parts,
		Axes:       axes,
		IsVariable: len(axes) > 0,
	}
}

// familyKey is the case-insensitive grouping and ordering key.
func familyKey(f FontInfo) string {
	return strings.ToLower(f.Parts.Family)
}

// compare orders two fonts: family (ordinal, case-insensitive), then width,
// weight, slant, and optical-size ranks ascending, then free text. A missing
// category carries rank zero and sorts before every explicit rank.
func compare(a, b FontInfo) int {
	if c := strings.Compare(familyKey(a), familyKey(b)); c != 0 {
		return c
	}
	rankPairs := [][2]int{
		{a.Parts.Width.Rank, b.Parts.Width.Rank},
		{a.Parts.Weight.Rank, b.Parts.Weight.Rank},
		{a.Parts.Slant.Rank, b.Parts.Slant.Rank},
		{a.Parts.OpticalSize.Rank, b.Parts.OpticalSize.Rank},
	}
	for _, p := range rankPairs {
		if p[0] != p[1] {
			if p[0] < p[1] {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(
		strings.Join(a.Parts.FreeText, " "),
		strings.Join(b.Parts.FreeText, " "),
	)
}

// Sort returns the fonts in canonical order. The input is left untouched and
// equal-key entries keep their relative input order.
func Sort(fonts []FontInfo) []FontInfo {
	out := make([]FontInfo, len(fonts))
	copy(out, fonts)
	sort.SliceStable(out, func(i, j int) bool { return compare(out[i], out[j]) < 0 })
	return out
}

// All yields the fonts in the same order Sort produces, one at a time. The
// sequence is single-use: ranging over it a second time yields nothing. Call
// All again for a fresh pass.
func All(fonts []FontInfo) iter.Seq[FontInfo] {
	consumed := false
	return func(yield func(FontInfo) bool) {
		if consumed {
			return
		}
		consumed = true
		for _, f := range Sort(fonts) {
			if !yield(f) {
				return
			}
		}
	}
}
