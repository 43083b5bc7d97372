package version

// These variables will be injected at build time via ldflags
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Maintainer contact shown by --info.
const (
	MaintainerNick  = "fanatique"
	MaintainerEmail = "forcigner@gmail.com"
)

// GetShortCommit returns the short git commit hash (first 7 characters)
func GetShortCommit() string {
	if len(GitCommit) >= 7 {
		return GitCommit[:7]
	}
	return GitCommit
}
