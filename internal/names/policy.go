package names

import "regexp"

// fsSelection and macStyle bit positions from the OS/2 and head tables.
const (
	fsSelectionItalic  = 1 << 0
	fsSelectionBold    = 1 << 5
	fsSelectionRegular = 1 << 6

	macStyleBold   = 1 << 0
	macStyleItalic = 1 << 1
)

var variableTokenPattern = regexp.MustCompile(`(?i)\b(Variable|VF|GX|Flex)\b`)

// StripVariableTokens removes variable-font marker words (Variable, VF, GX,
// Flex) from the text and collapses the leftover whitespace.
func StripVariableTokens(text string) string {
	return normalizeSpace(variableTokenPattern.ReplaceAllString(text, " "))
}

// Flags computes the OS/2 fsSelection and head macStyle bits implied by a
// legacy subfamily value.
func Flags(subfamily string) (fsSelection, macStyle uint16) {
	switch subfamily {
	case "Bold":
		return fsSelectionBold, macStyleBold
	case "Italic":
		return fsSelectionItalic, macStyleItalic
	case "Bold Italic":
		return fsSelectionBold | fsSelectionItalic, macStyleBold | macStyleItalic
	}
	return fsSelectionRegular, 0
}
