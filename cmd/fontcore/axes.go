package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/console"
	"github.com/andrewsipe/FontCore/internal/variable"
)

var axesCmd = &cobra.Command{
	Use:   "axes <metadata.toml>",
	Short: "Canonicalize variable-font axis metadata",
	Long: `Read axis and named-instance metadata from a TOML file, reorder
the axes canonically (wght, wdth, slant axes, then the rest
alphabetically), and validate instance coordinates against the declared
axis ranges.

The metadata file format:

  [[axes]]
  tag = "wght"
  min = 100.0
  default = 400.0
  max = 900.0
  name = "Weight"

  [[instances]]
  name = "Bold"
  [instances.coordinates]
  wght = 700.0

Examples:
  fontcore axes inter.toml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		detection, advs, err := loadDetectionDetailed(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitMetadataError)
		}

		out := console.New(os.Stdout)
		if detection.IsVariable() {
			out.Success("variable font with %d axes", len(detection.Axes))
		} else {
			out.Println("static font (no axes)")
		}
		for _, axis := range detection.Axes {
			label := axis.Tag
			if axis.DisplayName != "" {
				label = fmt.Sprintf("%s (%s)", axis.Tag, axis.DisplayName)
			}
			out.Field(label, fmt.Sprintf("%g..%g default %g", axis.Min, axis.Max, axis.Default))
		}
		if len(detection.Instances) > 0 {
			out.Println()
			out.Header("Instances")
			for _, inst := range detection.Instances {
				out.Bullet(0, "%s %s", inst.Name, formatCoordinates(inst.Coordinates))
			}
		}
		for _, adv := range advs {
			out.Warning("%s", adv.String())
		}
	},
}

// axisDocument mirrors the TOML metadata layout.
type axisDocument struct {
	Axes []struct {
		Tag     string  `toml:"tag"`
		Min     float64 `toml:"min"`
		Default float64 `toml:"default"`
		Max     float64 `toml:"max"`
		Name    string  `toml:"name"`
	} `toml:"axes"`
	Instances []struct {
		Name        string             `toml:"name"`
		Coordinates map[string]float64 `toml:"coordinates"`
	} `toml:"instances"`
}

func loadDetection(path string) (variable.Detection, error) {
	detection, _, err := loadDetectionDetailed(path)
	return detection, err
}

func loadDetectionDetailed(path string) (variable.Detection, []advisory.Advisory, error) {
	var doc axisDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return variable.Detection{}, nil, fmt.Errorf("failed to read axis metadata from %s: %w", path, err)
	}

	rawAxes := make([]variable.RawAxis, len(doc.Axes))
	for i, a := range doc.Axes {
		rawAxes[i] = variable.RawAxis{Tag: a.Tag, Min: a.Min, Default: a.Default, Max: a.Max, Name: a.Name}
	}
	rawInstances := make([]variable.RawInstance, len(doc.Instances))
	for i, inst := range doc.Instances {
		rawInstances[i] = variable.RawInstance{Name: inst.Name, Coordinates: inst.Coordinates}
	}

	detection, advs := variable.DetectAxes(rawAxes, rawInstances)
	return detection, advs, nil
}

func formatCoordinates(coords map[string]float64) string {
	if len(coords) == 0 {
		return ""
	}
	parts := make([]string, 0, len(coords))
	for tag, value := range coords {
		parts = append(parts, fmt.Sprintf("%s=%g", tag, value))
	}
	// Map iteration order is random; keep output stable.
	sort.Strings(parts)
	return "[" + strings.Join(parts, " ") + "]"
}
