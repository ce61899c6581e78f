// Package buildinfo provides version information derived from Go build metadata.
package buildinfo

import "runtime/debug"

// Version returns the version string for the current build.
//
// Tagged releases installed via go install report the tag (e.g. "v0.1.0").
// Development builds report "dev-<hash>", with a "-dirty" suffix when the
// working tree had uncommitted changes, or plain "dev" without VCS info.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return devVersion(info)
}

// devVersion constructs a development version string from VCS settings.
func devVersion(info *debug.BuildInfo) string {
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "dev-" + revision
	if modified {
		v += "-dirty"
	}
	return v
}
