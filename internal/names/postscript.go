package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/andrewsipe/FontCore/internal/advisory"
)

// maxPostScriptLen is the name ID 6 length ceiling in code points. After
// sanitization the name is pure ASCII, so bytes and code points coincide.
const maxPostScriptLen = 63

// postScriptName builds the name ID 6 value: family, a hyphen, and the
// concatenated style tokens. Disallowed code points are deleted (with an
// advisory per segment); overlong names drop whole style tokens from the
// end before the family itself is cut.
func postScriptName(family string, styleTokens []string) (string, []advisory.Advisory, error) {
	var advs []advisory.Advisory

	famSeg, removed := sanitizeSegment(family)
	if removed > 0 {
		advs = append(advs, advisory.Newf(advisory.Sanitization, family,
			"removed %d disallowed code point(s) from PostScript family segment", removed))
	}
	if famSeg == "" {
		return "", advs, &FormatError{}
	}

	styleSegs := make([]string, 0, len(styleTokens))
	for _, tok := range styleTokens {
		seg, rm := sanitizeSegment(tok)
		if rm > 0 {
			advs = append(advs, advisory.Newf(advisory.Sanitization, tok,
				"removed %d disallowed code point(s) from PostScript style token", rm))
		}
		if seg != "" {
			styleSegs = append(styleSegs, seg)
		}
	}

	assemble := func() string {
		if len(styleSegs) == 0 {
			return famSeg
		}
		return famSeg + "-" + strings.Join(styleSegs, "")
	}

	name := assemble()
	truncated := false
	for len(name) > maxPostScriptLen && len(styleSegs) > 0 {
		styleSegs = styleSegs[:len(styleSegs)-1]
		name = assemble()
		truncated = true
	}
	if len(name) > maxPostScriptLen {
		name = name[:maxPostScriptLen]
		truncated = true
	}
	if truncated {
		advs = append(advs, advisory.Newf(advisory.Policy, name,
			"PostScript name truncated to %d code points", maxPostScriptLen))
	}

	return name, advs, nil
}

// sanitizeSegment NFC-composes the text, strips whitespace, and keeps only
// ASCII letters, digits, and hyphens. The second return is the count of
// deleted non-whitespace code points.
func sanitizeSegment(s string) (string, int) {
	var b strings.Builder
	removed := 0
	for _, r := range norm.NFC.String(s) {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			// Whitespace removal is expected, not reportable.
		default:
			removed++
		}
	}
	return b.String(), removed
}
