package versions

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/ktane-web/filter-server/internal/versions.Version=v1.2.3"
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the build information of the running binary. The
// commit falls back to the VCS revision recorded by the Go toolchain.
func GetVersionInfo() VersionInfo {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return VersionInfo{
		Version:   Version,
		Commit:    commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
