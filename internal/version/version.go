// Package version reports how the binary was built
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Tag is set at link time: -ldflags "-X github.com/thenoetrevino/tick/internal/version.Tag=v1.0.0"
	Tag      string
	Revision string
	BuildAt  string
	Dirty    bool
)

func init() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range buildInfo.Settings {
		// https://pkg.go.dev/runtime/debug#BuildSetting
		switch setting.Key {
		case "vcs.revision":
			Revision = setting.Value
		case "vcs.time":
			BuildAt = setting.Value
		case "vcs.modified":
			Dirty = setting.Value == "true"
		}
	}
}

// String formats the build info, or "dev" for binaries built without VCS data
func String() string {
	return format(Tag, Revision, BuildAt, Dirty)
}

func format(tag, revision, buildAt string, dirty bool) string {
	// go run
	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}

	if t, err := time.Parse(time.RFC3339, buildAt); err == nil {
		buildAt = t.Format("2006-01-02 15:04:05")
	}

	if tag == "" {
		tag = "untagged"
	}

	s := fmt.Sprintf("%s %s at %s", tag, revision, buildAt)
	if dirty {
		s += " dirty"
	}
	return s
}
