// Package styledict holds the canonical style-token tables used to classify
// words found in font filenames and instance names.
//
// The dictionary is constructed once at process start and is immutable
// afterwards. Category resolution priority is an explicit ordered list
// (weight > width > optical-size > slant) so classification stays
// deterministic regardless of how the tables are stored.
package styledict

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// DictionaryVersion identifies the style tables. Caller-owned caches keyed
// on parse results should include this version so a table change invalidates
// them.
const DictionaryVersion = "1.0.0"

// Version is DictionaryVersion parsed as a semantic version.
var Version = semver.MustParse(DictionaryVersion)

// Category is a style dimension a token can belong to.
type Category int

const (
	Weight Category = iota
	Width
	OpticalSize
	Slant
)

func (c Category) String() string {
	switch c {
	case Weight:
		return "weight"
	case Width:
		return "width"
	case OpticalSize:
		return "optical-size"
	case Slant:
		return "slant"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Priority is the fixed resolution order applied when a token matches
// aliases in more than one category.
var Priority = []Category{Weight, Width, OpticalSize, Slant}

// Token is a classified style term. The zero value means "unspecified" and
// sorts before every explicit rank in its category.
type Token struct {
	Name     string
	Category Category
	Rank     int
}

// IsZero reports whether the token is the unspecified placeholder.
func (t Token) IsZero() bool { return t.Name == "" }

// Normalize folds a raw token into dictionary-lookup form: surrounding
// punctuation and whitespace stripped, case folded, internal whitespace
// collapsed to single spaces. Internal hyphens are preserved; hyphenated
// compound forms are enumerated at construction instead.
func Normalize(token string) string {
	s := strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// Classify resolves a token against the dictionary. When the token matches
// aliases in several categories the first category in Priority wins.
func Classify(token string) (Token, bool) {
	n := Normalize(token)
	if n == "" {
		return Token{}, false
	}
	for _, cat := range Priority {
		if tok, ok := index[cat][n]; ok {
			return tok, true
		}
	}
	return Token{}, false
}

// Matches returns every category match for a token in priority order.
// Callers use a result longer than one to report ambiguity advisories;
// Classify always agrees with Matches[0].
func Matches(token string) []Token {
	n := Normalize(token)
	if n == "" {
		return nil
	}
	var out []Token
	for _, cat := range Priority {
		if tok, ok := index[cat][n]; ok {
			out = append(out, tok)
		}
	}
	return out
}

// Tokens returns the canonical tokens of a category ordered by rank.
func Tokens(c Category) []Token {
	var out []Token
	for _, group := range tables {
		if group.cat != c {
			continue
		}
		for _, e := range group.entries {
			out = append(out, Token{Name: e.name, Category: c, Rank: e.rank})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// index maps normalized alias forms to tokens, one map per category.
var index = buildIndex()

func buildIndex() map[Category]map[string]Token {
	idx := make(map[Category]map[string]Token, len(tables))
	for _, group := range tables {
		m := make(map[string]Token)
		ranks := make(map[int]string)
		for _, e := range group.entries {
			if prev, dup := ranks[e.rank]; dup {
				panic(fmt.Sprintf("styledict: %s rank %d shared by %s and %s",
					group.cat, e.rank, prev, e.name))
			}
			ranks[e.rank] = e.name
			tok := Token{Name: e.name, Category: group.cat, Rank: e.rank}
			for _, form := range aliasForms(e) {
				if prev, dup := m[form]; dup && prev.Name != tok.Name {
					panic(fmt.Sprintf("styledict: %s alias %q maps to both %s and %s",
						group.cat, form, prev.Name, e.name))
				}
				m[form] = tok
			}
		}
		idx[group.cat] = m
	}
	return idx
}

// aliasForms enumerates the normalized lookup forms of an entry: the
// canonical name, each declared alias, and for multi-word aliases the
// concatenated and hyphenated spellings ("Semi Bold", "SemiBold",
// "Semi-Bold" all resolve identically).
func aliasForms(e entry) []string {
	seen := make(map[string]struct{})
	add := func(raw string) {
		if n := Normalize(raw); n != "" {
			seen[n] = struct{}{}
		}
	}
	all := append([]string{e.name}, e.aliases...)
	for _, raw := range all {
		add(raw)
		if strings.Contains(raw, " ") {
			add(strings.ReplaceAll(raw, " ", ""))
			add(strings.ReplaceAll(raw, " ", "-"))
		}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	return out
}
