package sorter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/variable"
)

func fi(filename string) FontInfo {
	return NewFontInfo(filename, parse.Parse(filename), nil)
}

func paths(fonts []FontInfo) []string {
	out := make([]string, len(fonts))
	for i, f := range fonts {
		out[i] = f.Path
	}
	return out
}

func TestSortByWeight(t *testing.T) {
	in := []FontInfo{
		fi("Roboto-Bold.ttf"),
		fi("Roboto-Regular.ttf"),
		fi("Roboto-Light.ttf"),
	}
	got := paths(Sort(in))
	want := []string{"Roboto-Light.ttf", "Roboto-Regular.ttf", "Roboto-Bold.ttf"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort order mismatch (-want +got):\n%s", diff)
	}
	// Input order is untouched.
	if in[0].Path != "Roboto-Bold.ttf" {
		t.Errorf("Sort mutated its input")
	}
}

func TestSortFullKeyOrder(t *testing.T) {
	in := []FontInfo{
		fi("Alpha-CondensedThin.ttf"),
		fi("Alpha-BlackItalic.ttf"),
		fi("Alpha-Black.ttf"),
		fi("Alpha.ttf"),
		fi("Alpha-Thin.ttf"),
	}
	got := paths(Sort(in))
	// Unspecified width first, then upright before italic within a weight,
	// then the condensed cut last.
	want := []string{
		"Alpha.ttf",
		"Alpha-Thin.ttf",
		"Alpha-Black.ttf",
		"Alpha-BlackItalic.ttf",
		"Alpha-CondensedThin.ttf",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFamiliesCaseInsensitive(t *testing.T) {
	in := []FontInfo{
		fi("zilla-Bold.ttf"),
		fi("Arial-Bold.ttf"),
		fi("ARIAL-Light.ttf"),
	}
	got := paths(Sort(in))
	want := []string{"ARIAL-Light.ttf", "Arial-Bold.ttf", "zilla-Bold.ttf"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortIdempotentAndStable(t *testing.T) {
	in := []FontInfo{
		fi("Roboto-Bold.ttf"),
		{Path: "b.ttf", Parts: parse.Parse("Same-Bold.ttf")},
		{Path: "a.ttf", Parts: parse.Parse("Same-Bold.ttf")},
		fi("Roboto-Light.ttf"),
	}
	once := Sort(in)
	twice := Sort(once)
	if diff := cmp.Diff(paths(once), paths(twice)); diff != "" {
		t.Errorf("Sort not idempotent:\n%s", diff)
	}

	// Equal keys keep input order.
	got := paths(once)
	for i, p := range got {
		if p == "b.ttf" {
			if i+1 >= len(got) || got[i+1] != "a.ttf" {
				t.Errorf("equal-key entries reordered: %v", got)
			}
		}
	}
}

func TestAllMatchesSortAndIsSingleUse(t *testing.T) {
	in := []FontInfo{fi("Roboto-Bold.ttf"), fi("Roboto-Light.ttf")}

	seq := All(in)
	var first []string
	for f := range seq {
		first = append(first, f.Path)
	}
	if diff := cmp.Diff(paths(Sort(in)), first); diff != "" {
		t.Errorf("All order differs from Sort:\n%s", diff)
	}

	var second []string
	for f := range seq {
		second = append(second, f.Path)
	}
	if len(second) != 0 {
		t.Errorf("consumed sequence yielded %v", second)
	}

	// A fresh call restarts.
	count := 0
	for range All(in) {
		count++
	}
	if count != len(in) {
		t.Errorf("fresh All yielded %d fonts, want %d", count, len(in))
	}
}

func TestNewFontInfoVariability(t *testing.T) {
	plain := fi("Roboto-Bold.ttf")
	if plain.IsVariable {
		t.Errorf("font without axes marked variable")
	}

	axes := []variable.Axis{{Tag: "wght", Min: 100, Default: 400, Max: 900}}
	vf := NewFontInfo("Roboto[wght].ttf", parse.Parse("Roboto[wght].ttf"), axes)
	if !vf.IsVariable {
		t.Errorf("font with axes not marked variable")
	}
}
