// Package deps reports the availability of external binaries metamv shells
// out to. The probe pipeline refuses to start when a required binary cannot
// be resolved, so operators learn about a missing ffprobe before any file is
// touched.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency metamv relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// FFprobeRequirement describes the metadata probe binary configured for this
// run. Command may be a bare name (PATH lookup) or an absolute path.
func FFprobeRequirement(command string) Requirement {
	return Requirement{
		Name:        "FFprobe",
		Command:     command,
		Description: "Reads container and stream metadata",
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, check(req))
	}
	return results
}

func check(req Requirement) Status {
	status := Status{
		Name:        req.Name,
		Command:     strings.TrimSpace(req.Command),
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if status.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	if _, err := exec.LookPath(status.Command); err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		return status
	}
	status.Available = true
	return status
}

// FirstMissing returns the first required dependency that is unavailable, or
// nil when everything needed is present.
func FirstMissing(statuses []Status) *Status {
	for i := range statuses {
		if !statuses[i].Optional && !statuses[i].Available {
			return &statuses[i]
		}
	}
	return nil
}
