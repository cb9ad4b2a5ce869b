package version

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "development build",
			info: Info{Version: "dev", Commit: "unknown", Date: "unknown", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "colorsheet version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release build",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2026-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "colorsheet version 1.2.0 (commit: 01234567, built: 2026-01-02T03:04:05Z, go1.25.1, darwin/arm64)",
		},
		{
			name: "short commit",
			info: Info{Version: "1.2.0", Commit: "abc", Date: "today", GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "colorsheet version 1.2.0 (commit: abc, built: today, go1.25.1, linux/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion == "" {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
}
