// Package buildinfo holds identifiers stamped in with
// -ldflags "-X glint/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long returns every stamped identifier, for -version output.
func Long() string {
	return "glint " + Version + " (commit " + Commit + ", built " + Date + ")"
}
