// Package userconfig provides user configuration management for fontcore.
// Configuration is stored in ~/.fontcore/config.toml and can be modified
// via the `fontcore config` command.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/andrewsipe/FontCore/internal/config"
)

// DefaultExtensions are the font file extensions scanned when the user has
// not configured their own list.
var DefaultExtensions = []string{".ttf", ".otf", ".woff", ".woff2"}

// Config represents user-configurable settings.
type Config struct {
	// Extensions lists the font file extensions included when scanning
	// directories. Entries carry the leading dot.
	Extensions []string `toml:"extensions"`

	// ForcedGroups lists sets of family names that always merge into one
	// group, regardless of prefix analysis.
	ForcedGroups [][]string `toml:"forced_groups"`

	// IgnoreTerms are tokens (foundry prefixes and the like) skipped when
	// clustering families into superfamilies.
	IgnoreTerms []string `toml:"ignore_terms"`

	// ExcludeFamilies are substrings marking families that never merge
	// into a superfamily.
	ExcludeFamilies []string `toml:"exclude_families"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// Load reads the config file and returns the configuration.
// Returns default values if the file doesn't exist.
// Returns an error only for file parsing issues, not missing files.
func Load() (*Config, error) {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return DefaultConfig(), nil // Silently use defaults
	}

	return loadFromPath(cfg.ConfigFile)
}

// loadFromPath reads config from a specific file path (for testing).
func loadFromPath(path string) (*Config, error) {
	userCfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return userCfg, nil // File doesn't exist, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), userCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(userCfg.Extensions) == 0 {
		userCfg.Extensions = append([]string(nil), DefaultExtensions...)
	}

	return userCfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return c.saveToPath(cfg.ConfigFile)
}

// saveToPath writes config to a specific file path (for testing).
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "extensions":
		return strings.Join(c.Extensions, ","), true
	case "ignore_terms":
		return strings.Join(c.IgnoreTerms, ","), true
	case "exclude_families":
		return strings.Join(c.ExcludeFamilies, ","), true
	case "forced_groups":
		sets := make([]string, len(c.ForcedGroups))
		for i, g := range c.ForcedGroups {
			sets[i] = strings.Join(g, ",")
		}
		return strings.Join(sets, ";"), true
	default:
		return "", false
	}
}

// Set updates a config value from a string. List keys take comma-separated
// values; forced_groups separates groups with semicolons.
// Returns an error if the key doesn't exist or the value is invalid.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "extensions":
		exts := splitList(value, ",")
		for _, ext := range exts {
			if !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("invalid extension %q: must start with a dot", ext)
			}
		}
		c.Extensions = exts
		return nil
	case "ignore_terms":
		c.IgnoreTerms = splitList(value, ",")
		return nil
	case "exclude_families":
		c.ExcludeFamilies = splitList(value, ",")
		return nil
	case "forced_groups":
		var groups [][]string
		for _, set := range splitList(value, ";") {
			members := splitList(set, ",")
			if len(members) < 2 {
				return fmt.Errorf("forced group %q needs at least two family names", set)
			}
			groups = append(groups, members)
		}
		c.ForcedGroups = groups
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"extensions":       "Font file extensions to scan, comma-separated (.ttf,.otf,...)",
		"ignore_terms":     "Tokens skipped during superfamily clustering, comma-separated",
		"exclude_families": "Family substrings that never merge into superfamilies, comma-separated",
		"forced_groups":    "Family sets to merge, members comma-separated, sets semicolon-separated",
	}
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
