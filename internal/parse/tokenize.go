package parse

import (
	"path/filepath"
	"strings"
	"unicode"
)

// stemOf reduces a filename to its naming stem: path components dropped,
// trailing extension stripped, and the internal ".CFF2" container marker
// removed (format information, not naming data).
func stemOf(filename string) string {
	if filename == "" {
		return ""
	}
	base := filepath.Base(filename)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".cff2") && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// tokenize splits a stem on explicit separators (hyphen, underscore,
// whitespace) and on lower-to-upper case boundaries inside unseparated
// runs, preserving the original casing of every token.
func tokenize(stem string) []string {
	var tokens []string
	for _, run := range strings.FieldsFunc(stem, isSeparator) {
		tokens = append(tokens, splitCaseRun(run)...)
	}
	return tokens
}

// splitCaseRun splits at each lower-to-upper transition: "BoldItalic"
// becomes ["Bold", "Italic"], an all-caps run like "KWAK" stays whole.
func splitCaseRun(run string) []string {
	runes := []rune(run)
	var out []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			out = append(out, string(runes[start:i]))
			start = i
		}
	}
	return append(out, string(runes[start:]))
}
