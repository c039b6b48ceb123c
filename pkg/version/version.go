// Package version reports the build of the linecount binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags "-X 'linecount/pkg/version.Version=1.2.3' -X 'linecount/pkg/version.Commit=abcdefg'"
var (
	Version = "dev"
	Commit  = ""
)

// AppName is the name reported in logs and version output.
const AppName = "linecount"

// Info describes the running build.
type Info struct {
	Version string
	Commit  string // Empty when neither ldflags nor VCS stamping provided one
	Go      string
}

// Get returns the build information. When Commit was not set through ldflags
// it falls back to the VCS revision stamped by the Go toolchain.
func Get() Info {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return Info{
		Version: Version,
		Commit:  commit,
		Go:      runtime.Version(),
	}
}

// Format renders the information. Short output is the bare version number;
// otherwise e.g. "linecount dev (abcdefg, go1.23.1)".
func (i Info) Format(short bool) string {
	if short {
		return i.Version
	}
	if i.Commit == "" {
		return fmt.Sprintf("%s %s (%s)", AppName, i.Version, i.Go)
	}
	return fmt.Sprintf("%s %s (%s, %s)", AppName, i.Version, shortCommit(i.Commit), i.Go)
}

func (i Info) String() string { return i.Format(false) }

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
