// Package buildinfo carries the version stamped in with -ldflags "-X stickv/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the UI and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line is the full one-line description printed by --version.
func Line() string {
	return "stickv " + Version + " (" + Commit + ", " + Date + ")"
}
