package preflight

import "metamv/internal/config"

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Target describes the filesystem object a rename run will touch.
type Target struct {
	Path  string
	Dir   bool // Path names a directory rather than a single file
	Write bool // renames will be executed rather than planned
}

// RunAll executes every check a rename run depends on for the given target.
func RunAll(cfg *config.Config, target Target) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckFFprobe(cfg.FFprobeBinary())}

	if target.Dir {
		results = append(results, CheckDirectoryAccess("Target directory", target.Path, target.Write))
	} else {
		results = append(results, CheckSourceFile("Target file", target.Path, target.Write))
	}

	return results
}

// FirstFailure returns the first failed check, or nil when everything passed.
func FirstFailure(results []Result) *Result {
	for i := range results {
		if !results[i].Passed {
			return &results[i]
		}
	}
	return nil
}
