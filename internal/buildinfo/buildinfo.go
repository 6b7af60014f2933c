// Package buildinfo carries version metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/euforicio/colorwheel-go/internal/buildinfo.Version=v0.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("colorwheel %s (commit=%s, date=%s)", Version, Commit, Date)
}
