package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lexweave/internal/libran"
)

// WriteFile writes contents to the target path, creating parent directories.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteJSON marshals v with indentation and writes it to the target path.
func WriteJSON(t testing.TB, path string, v any) {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	WriteFile(t, path, string(data))
}

// WriteFragment writes a list-shaped tranche fragment into dir under the
// given filename and returns the full path.
func WriteFragment(t testing.TB, dir, name string, entries []libran.Entry) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteJSON(t, path, entries)
	return path
}
