package tranche

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File points at one candidate fragment discovered in the pending area.
type File struct {
	Name string
	Path string
}

// skipPrefixes are basename prefixes (compared case-insensitively) that mark
// files the pipeline itself produced or that authors parked deliberately.
// Re-merging an already-unified artifact would double every entry, so these
// never count as fragments.
var skipPrefixes = []string{"unified", "qa_report", "audit_report", "changelog", "_", "."}

// ShouldSkip reports whether a directory entry name is excluded from merging
// by naming convention.
func ShouldSkip(name string) bool {
	lowered := strings.ToLower(name)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

// Scan lists the fragment files under dir in deterministic name order,
// applying the skip conventions. Subdirectories and non-JSON files are
// ignored.
func Scan(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan tranche directory: %w", err)
	}
	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".jsonc" {
			continue
		}
		if ShouldSkip(name) {
			continue
		}
		files = append(files, File{Name: name, Path: filepath.Join(dir, name)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
