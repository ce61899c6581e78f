package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/console"
	"github.com/andrewsipe/FontCore/internal/errmsg"
	"github.com/andrewsipe/FontCore/internal/names"
	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/variable"
)

var (
	namesAxesFile string
	namesInstance string
	namesFlags    bool
)

var namesCmd = &cobra.Command{
	Use:   "names <filename>...",
	Short: "Derive name-table values from font filenames",
	Long: `Derive the standards-compliant name-table values (family,
subfamily, preferred family and subfamily, PostScript name) for one or
more font filenames.

With --axes and --instance, the style of a named variable-font instance
replaces the style parsed from the filename.

Examples:
  fontcore names Lato-SemiBoldItalic.ttf
  fontcore names --flags Arial-Bold.ttf
  fontcore names --axes inter.toml --instance "Condensed Black" Inter-VF.ttf`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var inst *variable.Instance
		if namesInstance != "" {
			if namesAxesFile == "" {
				fmt.Fprintln(os.Stderr, "Error: --instance requires --axes")
				exitWithCode(ExitUsage)
			}
			detection, err := loadDetection(namesAxesFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitWithCode(ExitMetadataError)
			}
			inst = findInstance(detection, namesInstance)
			if inst == nil {
				fmt.Fprintf(os.Stderr, "Error: no instance named %q in %s\n", namesInstance, namesAxesFile)
				exitWithCode(ExitUsage)
			}
		}

		out := console.New(os.Stdout)
		tracker := &advisory.Tracker{}
		failed := false
		for i, arg := range args {
			if i > 0 {
				out.Println()
			}
			if !printNames(out, arg, inst, tracker) {
				failed = true
			}
		}
		if len(args) > 1 {
			printAdvisorySummary(out, tracker)
		}
		if failed {
			exitWithCode(ExitFormatError)
		}
	},
}

func init() {
	namesCmd.Flags().StringVar(&namesAxesFile, "axes", "", "TOML file with axis and instance metadata")
	namesCmd.Flags().StringVar(&namesInstance, "instance", "", "Named instance whose style replaces the filename style")
	namesCmd.Flags().BoolVar(&namesFlags, "flags", false, "Also print fsSelection and macStyle bits")
}

func printNames(out *console.Styler, filename string, inst *variable.Instance, tracker *advisory.Tracker) bool {
	values, advList, err := deriveFor(filename, inst)
	tracker.Add(advList...)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(err, &errmsg.ErrorContext{Path: filename}))
		return false
	}

	out.Header(filepath.Base(filename))
	out.Field("family", values.Family)
	out.Field("subfamily", values.Subfamily)
	if values.PreferredFamily != "" {
		out.Field("preferred family", values.PreferredFamily)
		out.Field("preferred subfamily", values.PreferredSubfamily)
	}
	out.Field("postscript", values.PostScript)
	if namesFlags {
		fsSel, macStyle := names.Flags(values.Subfamily)
		out.Field("fsSelection", fmt.Sprintf("0x%04x", fsSel))
		out.Field("macStyle", fmt.Sprintf("0x%04x", macStyle))
	}
	for _, adv := range advList {
		out.Warning("%s", adv.String())
	}
	return true
}

func deriveFor(filename string, inst *variable.Instance) (names.Values, []advisory.Advisory, error) {
	if inst == nil {
		return names.DeriveFile(filename)
	}
	parts := parse.Parse(filename)
	return names.Derive(parts, inst)
}

func findInstance(d variable.Detection, name string) *variable.Instance {
	for i := range d.Instances {
		if d.Instances[i].Name == name {
			return &d.Instances[i]
		}
	}
	return nil
}
