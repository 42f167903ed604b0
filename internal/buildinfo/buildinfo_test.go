package buildinfo

import (
	"runtime/debug"
	"testing"
	"time"
)

func TestVCSTime(t *testing.T) {
	testCases := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
		ok       bool
	}{
		{"absent", []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}, "", false},
		{"utc", []debug.BuildSetting{{Key: "vcs.time", Value: "2025-03-01T10:00:00Z"}}, "2025-03-01T10:00:00Z", true},
		{"offset", []debug.BuildSetting{{Key: "vcs.time", Value: "2025-03-01T12:00:00+02:00"}}, "2025-03-01T10:00:00Z", true},
		{"garbage", []debug.BuildSetting{{Key: "vcs.time", Value: "yesterday"}}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := vcsTime(tc.settings)
			if got != tc.want || ok != tc.ok {
				t.Errorf("vcsTime() = %q, %v; want %q, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestTimestampParses(t *testing.T) {
	if _, err := time.Parse(time.RFC3339, Timestamp()); err != nil {
		t.Errorf("Timestamp() not RFC 3339: %v", err)
	}
}
