// Package variable classifies externally supplied variation-axis metadata
// into a canonical axis list and validated named instances.
//
// Reading font binaries is out of scope: callers extract the raw axis and
// instance tuples (typically from an fvar table) and hand them in as plain
// values.
package variable

import (
	"sort"

	"github.com/andrewsipe/FontCore/internal/advisory"
)

// RawAxis is one axis tuple as read from a font's variation tables.
type RawAxis struct {
	Tag     string
	Min     float64
	Default float64
	Max     float64
	Name    string
}

// RawInstance is one named-instance tuple.
type RawInstance struct {
	Name        string
	Coordinates map[string]float64
}

// Axis is a canonicalized variation axis. Invariant: Min ≤ Default ≤ Max
// (violations are reported as advisories, values are kept as supplied).
type Axis struct {
	Tag         string
	Min         float64
	Default     float64
	Max         float64
	DisplayName string
}

// Instance is a validated named instance. Coordinates are a private copy of
// the raw input; out-of-range values are flagged, never dropped.
type Instance struct {
	Name        string
	Coordinates map[string]float64
}

// Detection is the classified variable-font structure.
type Detection struct {
	Axes      []Axis
	Instances []Instance
}

// IsVariable reports whether the font is variable. The axis list is the
// sole determinant; named instances alone never imply variability.
func (d Detection) IsVariable() bool { return len(d.Axes) > 0 }

// axisClass orders tags canonically: weight, width, slant-related, then
// everything else alphabetically.
func axisClass(tag string) int {
	switch tag {
	case "wght":
		return 0
	case "wdth":
		return 1
	case "slnt", "ital":
		return 2
	}
	return 3
}

// DetectAxes canonicalizes raw axis and instance metadata.
//
// Axes are reordered (wght, wdth, slant tags, remaining tags alphabetical)
// and bounds-checked. Every instance coordinate is checked against its
// declared axis range; violations and unknown tags produce advisories but
// the data is preserved verbatim.
func DetectAxes(axes []RawAxis, instances []RawInstance) (Detection, []advisory.Advisory) {
	var advs []advisory.Advisory

	det := Detection{}
	if len(axes) > 0 {
		det.Axes = make([]Axis, 0, len(axes))
		for _, raw := range axes {
			if raw.Min > raw.Default || raw.Default > raw.Max {
				advs = append(advs, advisory.Newf(advisory.AxisBounds, raw.Tag,
					"axis bounds not ordered: min %g, default %g, max %g",
					raw.Min, raw.Default, raw.Max))
			}
			det.Axes = append(det.Axes, Axis{
				Tag:         raw.Tag,
				Min:         raw.Min,
				Default:     raw.Default,
				Max:         raw.Max,
				DisplayName: raw.Name,
			})
		}
		sort.SliceStable(det.Axes, func(i, j int) bool {
			a, b := det.Axes[i], det.Axes[j]
			if ca, cb := axisClass(a.Tag), axisClass(b.Tag); ca != cb {
				return ca < cb
			}
			return a.Tag < b.Tag
		})
	}

	byTag := make(map[string]Axis, len(det.Axes))
	for _, ax := range det.Axes {
		byTag[ax.Tag] = ax
	}

	if len(instances) > 0 {
		det.Instances = make([]Instance, 0, len(instances))
		for _, raw := range instances {
			inst := Instance{Name: raw.Name}
			if len(raw.Coordinates) > 0 {
				inst.Coordinates = make(map[string]float64, len(raw.Coordinates))
				for tag, value := range raw.Coordinates {
					inst.Coordinates[tag] = value
					ax, declared := byTag[tag]
					if !declared {
						advs = append(advs, advisory.Newf(advisory.AxisBounds, raw.Name,
							"coordinate uses undeclared axis %q", tag))
						continue
					}
					if value < ax.Min || value > ax.Max {
						advs = append(advs, advisory.Newf(advisory.AxisBounds, raw.Name,
							"coordinate %s=%g outside axis range [%g, %g]",
							tag, value, ax.Min, ax.Max))
					}
				}
			}
			det.Instances = append(det.Instances, inst)
		}
	}

	return det, advs
}
