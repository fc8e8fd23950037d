package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"metamv/internal/deps"
)

// CheckFFprobe verifies that the configured probe binary resolves to an
// executable on this system.
func CheckFFprobe(binary string) Result {
	statuses := deps.CheckBinaries([]deps.Requirement{deps.FFprobeRequirement(binary)})
	status := statuses[0]
	if missing := deps.FirstMissing(statuses); missing != nil {
		return Result{Name: status.Name, Detail: missing.Detail}
	}
	return Result{Name: status.Name, Passed: true, Detail: status.Command}
}

// CheckDirectoryAccess verifies that the directory exists and grants the
// access a run needs: listing always, writing only when renames execute.
func CheckDirectoryAccess(name, path string, write bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := uint32(unix.R_OK | unix.X_OK)
	granted := "read ok"
	if write {
		mode |= unix.W_OK
		granted = "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, granted)}
}

// CheckSourceFile verifies that a single-file target exists, is not a
// directory, and can be read. Renaming rewrites the parent directory entry,
// so write mode additionally requires write access on the containing
// directory rather than on the file itself.
func CheckSourceFile(name, path string, write bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	if write {
		parent := filepath.Dir(path)
		if err := unix.Access(parent, uint32(unix.W_OK|unix.X_OK)); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: parent directory not writable: %v)", parent, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/rename ok)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}
