// Package buildinfo holds version metadata injected with -ldflags -X.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("mallctl %s (commit=%s, date=%s)", Version, Commit, Date)
}
