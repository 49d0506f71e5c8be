// Package buildinfo exposes the version stamped into the binary at link time.
//
//	go build -ldflags "-X github.com/matzehuels/yfiles2mermaid/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/yfiles2mermaid/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/yfiles2mermaid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import (
	"fmt"
	"runtime"
)

// Link-time variables. Unstamped builds report the zero values below.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Get returns the metadata of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
}

// Stamped reports whether the binary was built with a release version.
func (i Info) Stamped() bool {
	return i.Version != "" && i.Version != "dev"
}

// String formats the info on one line, e.g. "v0.3.0 (a1b2c3d, 2026-01-02T15:04:05Z, go1.24.0)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s, %s)", i.Version, i.Commit, i.Date, i.GoVersion)
}

// String returns the one-line build information of the running binary.
func String() string {
	return Get().String()
}

// Template returns the cobra version template. {{.Name}} is expanded by cobra.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
