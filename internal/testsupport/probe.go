package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// StubFFprobe writes an executable that prints the given JSON document on
// stdout for any invocation and returns its path. Tests point the probe
// binary at it to exercise the pipeline without real media files.
func StubFFprobe(t testing.TB, payload string) string {
	t.Helper()

	script := "#!/bin/sh\ncat <<'PAYLOAD'\n" + payload + "\nPAYLOAD\n"
	return writeExecutable(t, "ffprobe", script)
}

// StubFFprobeFailure writes an executable that prints message on stderr and
// exits with the given code, mimicking ffprobe on unreadable input.
func StubFFprobeFailure(t testing.TB, message string, code int) string {
	t.Helper()

	script := fmt.Sprintf("#!/bin/sh\necho %q >&2\nexit %d\n", message, code)
	return writeExecutable(t, "ffprobe", script)
}

func writeExecutable(t testing.TB, name, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}
