// Package version provides the release information of the binary.
package version

import (
	"fmt"
	"runtime"
)

// Build information, populated at build time with -ldflags.
var (
	gitVersion = "v0.1.0-dev"
	gitCommit  = ""
)

// Info describes the build version and runtime.
type Info struct {
	Version string
	Commit  string
	Runtime string
}

// Current returns the build info of the running binary.
func Current() Info {
	return Info{
		Version: gitVersion,
		Commit:  gitCommit,
		Runtime: fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version, with the commit appended when set.
func (i Info) String() string {
	if i.Commit != "" {
		return i.Version + "-" + i.Commit
	}
	return i.Version
}
