// Package version carries build information stamped in at link time.
package version

import (
	"fmt"
	"runtime"
)

// Build information. Overridden via -ldflags at release time.
//
//nolint:gochecknoglobals // link-time injection requires package-level vars
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("whichchain %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}
