package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrewsipe/FontCore/internal/buildinfo"
	"github.com/andrewsipe/FontCore/internal/log"
)

var (
	quietFlag   bool
	verboseFlag bool
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "fontcore",
	Short: "Normalize font filenames into structured naming and ordering data",
	Long: `fontcore parses font filenames into semantic style components,
detects variable-font axis structure, derives standards-compliant
name-table values, and produces a canonical sort order across families.

It never modifies font files; all output is structured data for
downstream repair and renaming tools.`,
	Version: buildinfo.Version(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDefault(log.NewText(os.Stderr, determineLogLevel()))
	},
}

// isTruthy reports whether an environment variable value means "enabled"
func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// determineLogLevel resolves the log level from flags and environment
// variables. Flags win over environment; debug beats verbose beats quiet.
func determineLogLevel() slog.Level {
	switch {
	case debugFlag:
		return slog.LevelDebug
	case verboseFlag:
		return slog.LevelInfo
	case quietFlag:
		return slog.LevelError
	case isTruthy(os.Getenv("FONTCORE_DEBUG")):
		return slog.LevelDebug
	case isTruthy(os.Getenv("FONTCORE_VERBOSE")):
		return slog.LevelInfo
	case isTruthy(os.Getenv("FONTCORE_QUIET")):
		return slog.LevelError
	}
	return slog.LevelWarn
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fontcore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildinfo.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show operational context")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Show errors only")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show internal troubleshooting details")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(axesCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
}
