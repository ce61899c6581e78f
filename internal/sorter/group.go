package sorter

import (
	"sort"
	"strings"
)

// Group is one named family (or superfamily) bucket with its fonts in
// canonical order.
type Group struct {
	Name  string
	Fonts []FontInfo
}

// GroupOptions tunes superfamily clustering.
type GroupOptions struct {
	// IgnoreTerms are tokens (foundry prefixes and the like) skipped when
	// comparing family names for shared prefixes.
	IgnoreTerms []string
	// ExcludeFamilies are substrings (case-insensitive) marking families
	// that must never merge into a superfamily.
	ExcludeFamilies []string
	// ForcedGroups lists family names that merge into one group regardless
	// of prefix analysis; the first present name becomes the group name.
	ForcedGroups [][]string
}

// GroupByFamily buckets fonts by family name, case-insensitive exact match.
// Groups come back ordered by name with each group's fonts sorted; forced
// groups are merged afterward.
func GroupByFamily(fonts []FontInfo, forcedGroups [][]string) []Group {
	groups := bucketByFamily(fonts)
	groups = applyForcedGroups(groups, forcedGroups)
	return finishGroups(groups)
}

// GroupBySuperfamily clusters families that share a meaningful name prefix
// ("Source Sans", "Source Serif" under "Source") into one group. Exact-match
// family grouping happens first; the clustering then operates on the unique
// family names only.
func GroupBySuperfamily(fonts []FontInfo, opts GroupOptions) []Group {
	groups := bucketByFamily(fonts)

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	sort.Strings(names)

	excluded, groupable := partitionFamilies(names, opts.ExcludeFamilies)
	superOf := buildSuperfamilyMap(groupable, excluded, opts.IgnoreTerms)

	merged := make(map[string]*Group)
	var order []string
	for _, g := range groups {
		super := superOf[strings.ToLower(g.Name)]
		if super == "" {
			super = g.Name
		}
		key := strings.ToLower(super)
		target, ok := merged[key]
		if !ok {
			target = &Group{Name: super}
			merged[key] = target
			order = append(order, key)
		}
		target.Fonts = append(target.Fonts, g.Fonts...)
	}

	out := make([]Group, 0, len(order))
	for _, key := range order {
		out = append(out, *merged[key])
	}
	out = applyForcedGroups(out, opts.ForcedGroups)
	return finishGroups(out)
}

// bucketByFamily groups by the case-insensitive family key, naming each
// group after the first spelling seen.
func bucketByFamily(fonts []FontInfo) []Group {
	byKey := make(map[string]*Group)
	var order []string
	for _, f := range fonts {
		key := familyKey(f)
		g, ok := byKey[key]
		if !ok {
			g = &Group{Name: f.Parts.Family}
			byKey[key] = g
			order = append(order, key)
		}
		g.Fonts = append(g.Fonts, f)
	}
	out := make([]Group, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// applyForcedGroups merges groups whose names appear together in a forced
// set. A set takes effect only when at least two of its names are present;
// the first present name wins as the merged group's name.
func applyForcedGroups(groups []Group, forcedGroups [][]string) []Group {
	if len(forcedGroups) == 0 {
		return groups
	}

	present := make(map[string]string, len(groups))
	for _, g := range groups {
		present[strings.ToLower(g.Name)] = g.Name
	}

	target := make(map[string]string)
	for _, set := range forcedGroups {
		var available []string
		for _, name := range set {
			if _, ok := present[strings.ToLower(name)]; ok {
				available = append(available, name)
			}
		}
		if len(available) < 2 {
			continue
		}
		for _, name := range available {
			target[strings.ToLower(name)] = available[0]
		}
	}

	merged := make(map[string]*Group)
	var order []string
	for _, g := range groups {
		name := g.Name
		if t, ok := target[strings.ToLower(name)]; ok {
			name = t
		}
		key := strings.ToLower(name)
		out, ok := merged[key]
		if !ok {
			out = &Group{Name: name}
			merged[key] = out
			order = append(order, key)
		}
		out.Fonts = append(out.Fonts, g.Fonts...)
	}

	result := make([]Group, 0, len(order))
	for _, key := range order {
		result = append(result, *merged[key])
	}
	return result
}

// finishGroups sorts each group's fonts and orders the groups by name.
func finishGroups(groups []Group) []Group {
	for i := range groups {
		groups[i].Fonts = Sort(groups[i].Fonts)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Name) < strings.ToLower(groups[j].Name)
	})
	return groups
}

// partitionFamilies splits family names into those barred from clustering
// (matching an exclude substring) and the rest.
func partitionFamilies(names, excludePatterns []string) (excluded, groupable []string) {
	patterns := make([]string, len(excludePatterns))
	for i, p := range excludePatterns {
		patterns[i] = strings.ToLower(p)
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		barred := false
		for _, p := range patterns {
			if p != "" && strings.Contains(lower, p) {
				barred = true
				break
			}
		}
		if barred {
			excluded = append(excluded, name)
		} else {
			groupable = append(groupable, name)
		}
	}
	return excluded, groupable
}

// buildSuperfamilyMap assigns every family name (keyed lowercase) to its
// superfamily. Families with no meaningful shared prefix map to themselves.
func buildSuperfamilyMap(groupable, excluded, ignoreTerms []string) map[string]string {
	superOf := make(map[string]string, len(groupable)+len(excluded))

	for i, nameA := range groupable {
		for _, nameB := range groupable[i+1:] {
			prefix := sharedPrefix(nameA, nameB, ignoreTerms)
			if prefix == "" {
				continue
			}
			assignSuperfamily(superOf, nameA, nameB, prefix)
		}
	}

	for _, name := range groupable {
		if _, ok := superOf[strings.ToLower(name)]; !ok {
			superOf[strings.ToLower(name)] = name
		}
	}
	for _, name := range excluded {
		superOf[strings.ToLower(name)] = name
	}
	return superOf
}

// assignSuperfamily records that two families belong together, merging any
// clusters they already sit in. When merging, the shorter superfamily name
// wins.
func assignSuperfamily(superOf map[string]string, nameA, nameB, prefix string) {
	superA := superOf[strings.ToLower(nameA)]
	superB := superOf[strings.ToLower(nameB)]

	switch {
	case superA != "" && superB != "":
		target := superA
		if len(strings.Fields(superB)) < len(strings.Fields(superA)) {
			target = superB
		}
		for key, super := range superOf {
			if super == superA || super == superB {
				superOf[key] = target
			}
		}
	case superA != "":
		superOf[strings.ToLower(nameB)] = superA
	case superB != "":
		superOf[strings.ToLower(nameA)] = superB
	default:
		superOf[strings.ToLower(nameA)] = prefix
		superOf[strings.ToLower(nameB)] = prefix
	}
}

// sharedPrefix returns the meaningful common leading tokens of two family
// names, or "" when the overlap is too thin to group on.
func sharedPrefix(nameA, nameB string, ignoreTerms []string) string {
	tokensA := filterTokens(nameA, ignoreTerms)
	tokensB := filterTokens(nameB, ignoreTerms)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return ""
	}

	var common []string
	for i := 0; i < len(tokensA) && i < len(tokensB); i++ {
		if tokensA[i] != tokensB[i] {
			break
		}
		common = append(common, tokensA[i])
	}
	if len(common) == 0 {
		return ""
	}
	prefix := strings.Join(common, " ")
	if len(common) >= 2 {
		return prefix
	}
	if substantialSingleToken(common[0], tokensA, tokensB) {
		return prefix
	}
	return ""
}

// substantialSingleToken decides whether one shared leading token is enough
// to form a superfamily. Short tokens need stronger evidence.
func substantialSingleToken(token string, tokensA, tokensB []string) bool {
	if len(token) < 3 {
		return false
	}
	isCompleteName := token == strings.Join(tokensA, " ") || token == strings.Join(tokensB, " ")
	bothMultiword := len(tokensA) >= 2 && len(tokensB) >= 2
	if len(token) == 3 {
		return isCompleteName || bothMultiword
	}
	if isCompleteName || bothMultiword {
		return true
	}
	return len(tokensA) == 1 && len(tokensB) == 1
}

// filterTokens splits a family name on whitespace, dropping ignored terms.
func filterTokens(name string, ignoreTerms []string) []string {
	var out []string
	for _, tok := range strings.Fields(name) {
		ignored := false
		for _, term := range ignoreTerms {
			if tok == term {
				ignored = true
				break
			}
		}
		if !ignored {
			out = append(out, tok)
		}
	}
	return out
}
