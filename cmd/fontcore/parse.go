package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrewsipe/FontCore/internal/console"
	"github.com/andrewsipe/FontCore/internal/log"
	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/styledict"
)

var parseCmd = &cobra.Command{
	Use:   "parse <filename>...",
	Short: "Classify font filenames into naming parts",
	Long: `Classify one or more font filenames into a family name and
semantic style components (weight, width, slant, optical size).

The filenames are interpreted as names only; the files do not have to
exist on disk.

Examples:
  fontcore parse Roboto-CondensedBoldItalic.ttf
  fontcore parse "Source Serif Display Light.otf" Lato-Black.ttf`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := console.New(os.Stdout)
		for i, arg := range args {
			if i > 0 {
				out.Println()
			}
			printParts(out, arg)
		}
	},
}

func printParts(out *console.Styler, filename string) {
	parts, advs := parse.ParseDetailed(filename)
	log.Default().Debug("parsed filename", "path", filename, "advisories", len(advs))

	out.Header(filepath.Base(filename))
	out.Field("family", parts.Family)
	printToken(out, "weight", parts.Weight)
	printToken(out, "width", parts.Width)
	printToken(out, "slant", parts.Slant)
	printToken(out, "optical", parts.OpticalSize)
	if len(parts.FreeText) > 0 {
		out.Field("free text", strings.Join(parts.FreeText, " "))
	}
	if parts.VariableHint {
		out.Field("variable hint", "yes")
	}
	for _, adv := range advs {
		out.Warning("%s", adv.String())
	}
}

func printToken(out *console.Styler, label string, tok styledict.Token) {
	if tok.IsZero() {
		return
	}
	out.Field(label, tok.Name)
}
