package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/andrewsipe/FontCore/internal/advisory"
	"github.com/andrewsipe/FontCore/internal/collect"
	"github.com/andrewsipe/FontCore/internal/config"
	"github.com/andrewsipe/FontCore/internal/console"
	"github.com/andrewsipe/FontCore/internal/errmsg"
	"github.com/andrewsipe/FontCore/internal/log"
	"github.com/andrewsipe/FontCore/internal/parse"
	"github.com/andrewsipe/FontCore/internal/sorter"
	"github.com/andrewsipe/FontCore/internal/userconfig"
)

var (
	sortRecursive bool
	sortGroupBy   string
	sortInclude   []string
	sortExclude   []string
	sortReport    string
)

var sortCmd = &cobra.Command{
	Use:   "sort <path>...",
	Short: "Sort font files into canonical style order",
	Long: `Collect font files from the given paths and list them in canonical
order: family, then width, weight, slant, and optical size from normal
to extreme.

With --group, fonts are bucketed by family or superfamily before
sorting. Forced groups, ignore terms, and exclusions come from the
fontcore configuration file.

With --report, the listing and advisory summary are also written to a
named file under ~/.fontcore/reports.

Examples:
  fontcore sort ~/fonts
  fontcore sort --recursive --group superfamily ~/fonts
  fontcore sort --report library.txt ~/fonts
  fontcore sort --include 'source/**' --exclude '**/broken/**' ~/fonts`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if sortGroupBy != "none" && sortGroupBy != "family" && sortGroupBy != "superfamily" {
			fmt.Fprintf(os.Stderr, "Error: invalid --group value %q (none, family, superfamily)\n", sortGroupBy)
			exitWithCode(ExitUsage)
		}

		cfg, err := userconfig.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		var paths []string
		for _, root := range args {
			found, err := collect.Fonts(root, collect.Options{
				Extensions: cfg.Extensions,
				Include:    sortInclude,
				Exclude:    sortExclude,
				Recursive:  sortRecursive,
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(err, &errmsg.ErrorContext{Path: root}))
				exitWithCode(ExitNotFound)
			}
			paths = append(paths, found...)
		}

		fonts, tracker := parseAll(paths)

		render := func(out *console.Styler) {
			switch sortGroupBy {
			case "none":
				for _, font := range sorter.Sort(fonts) {
					out.Println(font.Path)
				}
			case "family":
				printGroups(out, sorter.GroupByFamily(fonts, cfg.ForcedGroups))
			case "superfamily":
				printGroups(out, sorter.GroupBySuperfamily(fonts, sorter.GroupOptions{
					IgnoreTerms:     cfg.IgnoreTerms,
					ExcludeFamilies: cfg.ExcludeFamilies,
					ForcedGroups:    cfg.ForcedGroups,
				}))
			}
			printAdvisorySummary(out, tracker)
		}

		out := console.New(os.Stdout)
		render(out)

		if sortReport != "" {
			var buf bytes.Buffer
			render(console.NewPlain(&buf))
			path, err := writeReport(sortReport, buf.Bytes())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
				exitWithCode(ExitGeneral)
			}
			out.Success("report written to %s", path)
		}
	},
}

func init() {
	sortCmd.Flags().BoolVarP(&sortRecursive, "recursive", "r", false, "Descend into subdirectories")
	sortCmd.Flags().StringVar(&sortGroupBy, "group", "none", "Group output by 'family' or 'superfamily'")
	sortCmd.Flags().StringArrayVar(&sortInclude, "include", nil, "Only collect paths matching this glob (repeatable)")
	sortCmd.Flags().StringArrayVar(&sortExclude, "exclude", nil, "Skip paths matching this glob (repeatable)")
	sortCmd.Flags().StringVar(&sortReport, "report", "", "Also write the listing to this file under the reports directory")
}

// parseAll classifies the collected filenames on a worker pool, collecting
// classification advisories. Order of the result matches the input order.
func parseAll(paths []string) ([]sorter.FontInfo, *advisory.Tracker) {
	workers := config.GetScanWorkers()
	if workers > len(paths) && len(paths) > 0 {
		workers = len(paths)
	}
	cache := parse.NewCacheSized(config.GetParseCacheLimit())
	tracker := &advisory.Tracker{}
	log.Default().Debug("parsing collected fonts", "count", len(paths), "workers", workers)

	fonts := make([]sorter.FontInfo, len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				parts, advs := cache.ParseDetailed(filepath.Base(paths[i]))
				tracker.Add(advs...)
				fonts[i] = sorter.NewFontInfo(paths[i], parts, nil)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return fonts, tracker
}

// writeReport stores a report body under the home reports directory,
// creating the directory layout on first use.
func writeReport(name string, body []byte) (string, error) {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return "", err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return "", err
	}
	path := cfg.ReportFile(name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}

func printGroups(out *console.Styler, groups []sorter.Group) {
	for i, group := range groups {
		if i > 0 {
			out.Println()
		}
		out.Header(fmt.Sprintf("%s (%d)", group.Name, len(group.Fonts)))
		for _, font := range group.Fonts {
			out.Bullet(0, "%s", font.Path)
		}
	}
}
