package functional

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
)

// aCleanFontcoreEnvironment is a no-op because the Before hook already sets
// up the environment. This step exists so feature files read naturally.
func aCleanFontcoreEnvironment(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

// aFontFile creates an empty placeholder font in the scenario's fonts
// directory. Only the filename matters; fontcore never reads font binaries.
func aFontFile(ctx context.Context, name string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}
	path := filepath.Join(state.fontsDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ctx, err
	}
	return ctx, os.WriteFile(path, []byte{0}, 0o644)
}

// anAxisMetadataFile writes a TOML document into the fonts directory.
func anAxisMetadataFile(ctx context.Context, name string, doc *godog.DocString) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}
	path := filepath.Join(state.fontsDir, name)
	return ctx, os.WriteFile(path, []byte(doc.Content), 0o644)
}

// iRun executes a command string, replacing "fontcore" with the test binary
// path and "FONTS" with the scenario's fonts directory.
func iRun(ctx context.Context, command string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	args := strings.Fields(command)
	for i, arg := range args {
		if i == 0 && arg == "fontcore" {
			args[0] = state.binPath
			continue
		}
		args[i] = strings.ReplaceAll(arg, "FONTS", state.fontsDir)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = state.fontsDir
	cmd.Env = append(os.Environ(),
		"FONTCORE_HOME="+state.homeDir,
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			state.exitCode = exitErr.ExitCode()
		} else {
			return ctx, fmt.Errorf("command execution failed: %w", err)
		}
	} else {
		state.exitCode = 0
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theExitCodeIsNot(ctx context.Context, notExpected int) error {
	state := getState(ctx)
	if state.exitCode == notExpected {
		return fmt.Errorf("expected exit code to not be %d\nstdout: %s\nstderr: %s",
			notExpected, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func appearsBefore(ctx context.Context, first, second string) error {
	state := getState(ctx)
	i := strings.Index(state.stdout, first)
	j := strings.Index(state.stdout, second)
	if i < 0 {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", first, state.stdout)
	}
	if j < 0 {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", second, state.stdout)
	}
	if i > j {
		return fmt.Errorf("expected %q before %q, got:\n%s", first, second, state.stdout)
	}
	return nil
}
