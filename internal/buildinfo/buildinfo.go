// Package buildinfo reports when the running binary was built.
package buildinfo

import (
	"os"
	"runtime/debug"
	"time"
)

// Timestamp returns the build time in RFC 3339 UTC. It prefers the VCS
// commit time recorded by the Go toolchain, then the executable's mtime,
// then the current time.
func Timestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if ts, ok := vcsTime(info.Settings); ok {
			return ts
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func vcsTime(settings []debug.BuildSetting) (string, bool) {
	for _, setting := range settings {
		if setting.Key != "vcs.time" {
			continue
		}
		t, err := time.Parse(time.RFC3339, setting.Value)
		if err != nil {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	}
	return "", false
}
