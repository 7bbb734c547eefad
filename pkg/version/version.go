// Package version reports the build version of mdclean.
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	Branch    string
	BuildUser string
	BuildDate string

	Revision  = revision(readBuildSettings())
	GoVersion = runtime.Version()
	GoOS      = runtime.GOOS
	GoArch    = runtime.GOARCH
)

// GetVersion returns the ldflags version, then the module version recorded
// by "go install", then the VCS revision.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Revision
}

func readBuildSettings() map[string]string {
	settings := map[string]string{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}

	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	return settings
}

// revision returns the short VCS revision, suffixed with "-dirty" when the
// working tree had local changes.
func revision(settings map[string]string) string {
	rev, ok := settings["vcs.revision"]
	if !ok || rev == "" {
		return "unknown"
	}

	if len(rev) > 7 {
		rev = rev[:7]
	}

	if settings["vcs.modified"] == "true" {
		return rev + "-dirty"
	}

	return rev
}
