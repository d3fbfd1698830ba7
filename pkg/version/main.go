package version

import "fmt"

// Overridden at build time:
//
//	go build -ldflags "-X docker-run-task/pkg/version.version=1.2.3 -X docker-run-task/pkg/version.commit=abc123"
var (
	version = "0.0.0"
	commit  = ""
)

// GetVersion returns the release version without build metadata.
func GetVersion() string {
	return version
}

// String returns the version with the commit appended when known.
func String() string {
	if commit == "" {
		return GetVersion()
	}
	return fmt.Sprintf("%s (%s)", GetVersion(), commit)
}
