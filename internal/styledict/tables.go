package styledict

// entry declares one canonical style term. Spaced aliases are expanded into
// concatenated and hyphenated forms automatically; single-word synonyms are
// listed as-is. Case never matters after normalization.
type entry struct {
	name    string
	rank    int
	aliases []string
}

// Weight ranks follow the usWeightClass scale so numeric filename tokens
// ("700") classify alongside their word forms. Synonyms that name the same
// optical weight share one canonical term to keep ranks unique.
var weightEntries = []entry{
	{name: "Hairline", rank: 50},
	{name: "Thin", rank: 100, aliases: []string{"100"}},
	{name: "ExtraLight", rank: 200, aliases: []string{"Extra Light", "UltraLight", "Ultra Light", "X Light", "200"}},
	{name: "Light", rank: 300, aliases: []string{"300"}},
	{name: "SemiLight", rank: 350, aliases: []string{"Semi Light", "DemiLight", "Demi Light"}},
	{name: "Book", rank: 380},
	{name: "Regular", rank: 400, aliases: []string{"Normal", "Roman", "Plain", "400"}},
	{name: "Medium", rank: 500, aliases: []string{"500"}},
	{name: "SemiBold", rank: 600, aliases: []string{"Semi Bold", "DemiBold", "Demi Bold", "600"}},
	{name: "Bold", rank: 700, aliases: []string{"700"}},
	{name: "ExtraBold", rank: 800, aliases: []string{"Extra Bold", "UltraBold", "Ultra Bold", "X Bold", "800"}},
	{name: "Black", rank: 900, aliases: []string{"Heavy", "900"}},
	{name: "ExtraBlack", rank: 950, aliases: []string{"Extra Black", "UltraBlack", "Ultra Black", "Fat", "950"}},
}

// Width ranks follow usWidthClass (1 narrowest, 9 widest; 5 is the implicit
// normal width and has no token). X-run spellings map single X to the Extra
// variant and longer runs to Ultra, matching common foundry usage.
var widthEntries = []entry{
	{name: "UltraCondensed", rank: 1, aliases: []string{"Ultra Condensed", "UltraCompressed", "Ultra Compressed", "XXCondensed", "XXXCondensed"}},
	{name: "ExtraCondensed", rank: 2, aliases: []string{"Extra Condensed", "Compressed", "ExtraCompressed", "Extra Compressed", "X Condensed", "XCondensed"}},
	{name: "Condensed", rank: 3, aliases: []string{"Narrow", "Compact", "Tight"}},
	{name: "SemiCondensed", rank: 4, aliases: []string{"Semi Condensed", "SemiNarrow", "Semi Narrow", "DemiCondensed", "Demi Condensed"}},
	{name: "SemiExpanded", rank: 6, aliases: []string{"Semi Expanded", "SemiExtended", "Semi Extended", "SemiWide", "Semi Wide"}},
	{name: "Expanded", rank: 7, aliases: []string{"Extended", "Wide"}},
	{name: "ExtraExpanded", rank: 8, aliases: []string{"Extra Expanded", "ExtraExtended", "Extra Extended", "ExtraWide", "Extra Wide", "X Wide", "XWide"}},
	{name: "UltraExpanded", rank: 9, aliases: []string{"Ultra Expanded", "UltraExtended", "Ultra Extended", "UltraWide", "Ultra Wide"}},
}

// Optical-size ranks order terms by the design size they conventionally
// target, smallest first.
var opticalEntries = []entry{
	{name: "Micro", rank: 1},
	{name: "Caption", rank: 2},
	{name: "Text", rank: 3},
	{name: "Subhead", rank: 4},
	{name: "Deck", rank: 5},
	{name: "Headline", rank: 6},
	{name: "Title", rank: 7, aliases: []string{"Titling"}},
	{name: "Display", rank: 8},
	{name: "Poster", rank: 9},
	{name: "Banner", rank: 10},
}

// Slant rank 0 is the implicit upright; explicit slopes start at 1 so
// upright faces sort first.
var slantEntries = []entry{
	{name: "Italic", rank: 1},
	{name: "Oblique", rank: 2},
	{name: "Slanted", rank: 3, aliases: []string{"Slant", "Inclined"}},
	{name: "BackSlanted", rank: 4, aliases: []string{"Back Slanted", "BackSlant", "Reverse", "Retalic"}},
}

var tables = []struct {
	cat     Category
	entries []entry
}{
	{Weight, weightEntries},
	{Width, widthEntries},
	{OpticalSize, opticalEntries},
	{Slant, slantEntries},
}
