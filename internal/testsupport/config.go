package testsupport

import (
	"path/filepath"
	"testing"

	"lexweave/internal/config"
)

// ConfigOption adjusts one field of the config built by NewConfig.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig returns a default config whose every path points under a fresh
// t.TempDir, with options applied on top.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.PendingDir = filepath.Join(base, "pending")
	cfgVal.Paths.MergedDir = filepath.Join(base, "merged")
	cfgVal.Paths.DeletedDir = filepath.Join(base, "deleted")
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ManifestPath = filepath.Join(base, "manifest.db")
	cfgVal.Baseline.Path = ""
	cfgVal.Exclusions.Path = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithGateThreshold overrides the QA gate threshold on the test config.
func WithGateThreshold(threshold int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.QA.GateThreshold = threshold
	}
}

// WithDictionaryVersion overrides the version stamped on unified artifacts.
func WithDictionaryVersion(version string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Merge.DictionaryVersion = version
	}
}

// WithBaselinePath points the test config at a baseline snapshot file.
func WithBaselinePath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Baseline.Path = path
	}
}

// WithExclusionsPath points the test config at an exclusion registry file.
func WithExclusionsPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Exclusions.Path = path
	}
}

// BaseDir recovers the temp root that NewConfig placed the directories under.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.PendingDir)
}
