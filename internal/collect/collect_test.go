package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewsipe/FontCore/internal/log"
	"github.com/andrewsipe/FontCore/internal/userconfig"
)

func writeFiles(t *testing.T, root string, names []string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestFontsRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"Lato-Bold.ttf",
		"sub/Roboto-Light.otf",
		"sub/notes.txt",
		"sub/deep/Inter.woff2",
	})

	got, err := Fonts(root, Options{Recursive: true, Logger: log.NewNoop()})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Lato-Bold.ttf",
		"sub/Roboto-Light.otf",
		"sub/deep/Inter.woff2",
	}, relPaths(t, root, got))
}

func TestFontsNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"Lato-Bold.ttf",
		"sub/Roboto-Light.otf",
	})

	got, err := Fonts(root, Options{Logger: log.NewNoop()})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lato-Bold.ttf"}, relPaths(t, root, got))
}

func TestFontsDefaultExtensionsComeFromUserconfig(t *testing.T) {
	root := t.TempDir()
	var names []string
	for i, ext := range userconfig.DefaultExtensions {
		names = append(names, fmt.Sprintf("font%d%s", i, ext))
	}
	writeFiles(t, root, append(names, "skip.doc"))

	got, err := Fonts(root, Options{Logger: log.NewNoop()})
	require.NoError(t, err)
	assert.Len(t, got, len(userconfig.DefaultExtensions))
}

func TestFontsExtensionFilterIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"UPPER.TTF", "lower.ttf", "skip.doc"})

	got, err := Fonts(root, Options{Logger: log.NewNoop()})
	require.NoError(t, err)
	assert.Equal(t, []string{"UPPER.TTF", "lower.ttf"}, relPaths(t, root, got))
}

func TestFontsIncludeExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"keep/Lato-Bold.ttf",
		"keep/backup/Lato-Bold.ttf",
		"other/Roboto.ttf",
	})

	got, err := Fonts(root, Options{
		Recursive: true,
		Include:   []string{"keep/**"},
		Exclude:   []string{"**/backup/**"},
		Logger:    log.NewNoop(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep/Lato-Bold.ttf"}, relPaths(t, root, got))
}

func TestFontsInvalidPattern(t *testing.T) {
	root := t.TempDir()
	_, err := Fonts(root, Options{Include: []string{"[bad"}, Logger: log.NewNoop()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestFontsSingleFileRoot(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"Lato-Bold.ttf"})
	file := filepath.Join(root, "Lato-Bold.ttf")

	got, err := Fonts(file, Options{Logger: log.NewNoop()})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, got)
}

func TestFontsMissingRoot(t *testing.T) {
	_, err := Fonts(filepath.Join(t.TempDir(), "nope"), Options{Logger: log.NewNoop()})
	require.Error(t, err)
}
