package mirrorconf

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// Commit is the source revision, set via ldflags.
	Commit = "unknown"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// VersionString renders the build information for --version output.
func VersionString() string {
	return Version + " (" + Commit + ", built " + CompiledAt + ")"
}
