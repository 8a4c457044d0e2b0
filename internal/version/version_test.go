package version

import (
	"testing"
)

func withBuild(t *testing.T, v, built, commit string) {
	t.Helper()
	oldV, oldB, oldC := Version, BuildTime, GitCommit
	Version, BuildTime, GitCommit = v, built, commit
	t.Cleanup(func() { Version, BuildTime, GitCommit = oldV, oldB, oldC })
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name     string
		built    string
		commit   string
		expected string
	}{
		{"development", "unknown", "unknown", "v1.2.0 (development build)"},
		{"unparsable time", "yesterday", "abc", "v1.2.0 (built yesterday)"},
		{"release", "2025-10-02T08:30:00Z", "0123456789abcdef", "v1.2.0 (built 2025-10-02 08:30:00 UTC, commit 01234567)"},
		{"short commit", "2025-10-02T08:30:00Z", "abc", "v1.2.0 (built 2025-10-02 08:30:00 UTC, commit abc)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, "v1.2.0", tt.built, tt.commit)
			if got := Info(); got != tt.expected {
				t.Errorf("Info() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestGetVersionString(t *testing.T) {
	withBuild(t, "v1.2.0", "unknown", "unknown")
	if got := GetVersionString(); got != "v1.2.0" {
		t.Errorf("GetVersionString() = %q; want %q", got, "v1.2.0")
	}

	withBuild(t, "v1.2.0", "2025-10-02T08:30:00Z", "unknown")
	if got := GetVersionString(); got != "v1.2.0 (built 2025-10-02 08:30:00 UTC)" {
		t.Errorf("GetVersionString() = %q", got)
	}
}
