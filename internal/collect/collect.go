// Package collect discovers font files on disk for the CLI commands.
//
// The core engine never touches the filesystem; this package is the external
// collaborator that feeds it paths.
package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/andrewsipe/FontCore/internal/log"
	"github.com/andrewsipe/FontCore/internal/userconfig"
)

// Options controls a collection pass.
type Options struct {
	// Extensions filters by file extension, matched case-insensitively.
	// Entries carry the leading dot. Empty means userconfig.DefaultExtensions.
	Extensions []string

	// Include holds doublestar patterns matched against the path relative
	// to the scanned root (slash-separated). Empty means everything.
	Include []string

	// Exclude holds doublestar patterns; a match removes the file even
	// when an include pattern matched it.
	Exclude []string

	// Recursive descends into subdirectories. Off, only the root's direct
	// entries are considered.
	Recursive bool

	Logger log.Logger
}

// Fonts walks root and returns the matching font file paths, sorted.
// A root that is itself a font file returns a single-element slice.
func Fonts(root string, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	exts := extensionSet(opts.Extensions)

	for _, pat := range append(append([]string(nil), opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid pattern %q", pat)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if exts[strings.ToLower(filepath.Ext(root))] {
			return []string{root}, nil
		}
		return nil, nil
	}

	var out []string
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if !opts.Recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(opts.Include, rel, true) {
			return nil
		}
		if matchesAny(opts.Exclude, rel, false) {
			logger.Debug("excluded by pattern", "path", rel)
			return nil
		}
		out = append(out, path)
		return nil
	}

	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(out)
	logger.Info("collected font files", "root", root, "count", len(out))
	return out, nil
}

// matchesAny reports whether rel matches one of the patterns. An empty
// pattern list returns emptyResult.
func matchesAny(patterns []string, rel string, emptyResult bool) bool {
	if len(patterns) == 0 {
		return emptyResult
	}
	for _, pat := range patterns {
		// Patterns were validated up front.
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

func extensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = userconfig.DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}
