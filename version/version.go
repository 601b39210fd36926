package version

var (
	Version     = "dev"
	GitCommit   = "none"
	BuildDate   = "unknown"
	FullVersion = Version + " (" + GitCommit + ", " + BuildDate + ")"
)
