package exclusion

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample_exclusions.yaml
var sampleExclusions string

// WriteSample writes a starter exclusion registry seeded with the canonical
// preserved terms and cultural domains from the founding dictionaries.
func WriteSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create exclusions directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleExclusions), 0o644); err != nil {
		return fmt.Errorf("write sample exclusions: %w", err)
	}
	return nil
}
