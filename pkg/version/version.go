package version

// Injected at build time via -ldflags "-X stratagix/pkg/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info represents version information for a service
type Info struct {
	Service   string `json:"service,omitempty"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// GetInfo returns version information for the named service
func GetInfo(service string) Info {
	return Info{
		Service:   service,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}

// String renders "version (commit)" for banners and logs.
func (i Info) String() string {
	s := i.Version + " (" + GetShortCommit() + ")"
	if i.Service != "" {
		s = i.Service + " " + s
	}
	return s
}

// GetShortCommit returns the short git commit hash (first 7 characters)
func GetShortCommit() string {
	if len(GitCommit) >= 7 {
		return GitCommit[:7]
	}
	return GitCommit
}
