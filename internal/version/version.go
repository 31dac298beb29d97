// Package version exposes the build's version metadata.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X connectlife/internal/version.Version=v1.2.3 \
//	                   -X connectlife/internal/version.Commit=abc123"
//
// When left unset, both are recovered from the embedded VCS build info,
// falling back to a dev placeholder.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo()
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills Version and Commit from the VCS stamps Go embeds
// when building inside a git checkout.
func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision, modified, buildTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			buildTime = setting.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	// Tags are not part of build info, so an unset Version becomes a dev
	// version dated by the commit.
	if Version == "" && buildTime != "" {
		if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the version and commit in one printable string.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
