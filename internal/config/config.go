package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration for the pipeline working areas.
type Paths struct {
	PendingDir   string `toml:"pending_dir" json:"pending_dir"`
	MergedDir    string `toml:"merged_dir" json:"merged_dir"`
	DeletedDir   string `toml:"deleted_dir" json:"deleted_dir"`
	OutputDir    string `toml:"output_dir" json:"output_dir"`
	LogDir       string `toml:"log_dir" json:"log_dir"`
	ManifestPath string `toml:"manifest_path" json:"manifest_path"`
}

// Merge contains configuration for the tranche merge stage.
type Merge struct {
	DictionaryVersion string `toml:"dictionary_version" json:"dictionary_version"`
	SourceLabel       string `toml:"source_label" json:"source_label"`
}

// Baseline contains configuration for the prior-release reference index.
type Baseline struct {
	Path      string `toml:"path" json:"path"`
	NearMatch bool   `toml:"near_match" json:"near_match"`
}

// Exclusions contains configuration for the known-good term registry.
type Exclusions struct {
	Path                string `toml:"path" json:"path"`
	IgnoreCase          bool   `toml:"ignore_case" json:"ignore_case"`
	NormalizeDiacritics bool   `toml:"normalize_diacritics" json:"normalize_diacritics"`
	TreatHyphenAsDash   bool   `toml:"treat_hyphen_as_dash" json:"treat_hyphen_as_dash"`
}

// QA contains configuration for the weighted quality gate.
type QA struct {
	GateThreshold     int    `toml:"gate_threshold" json:"gate_threshold"`
	HomonymPolicyPath string `toml:"homonym_policy_path" json:"homonym_policy_path"`
}

// Audit contains configuration for the advisory linguistic audit.
type Audit struct {
	MaxProseExamples int `toml:"max_prose_examples" json:"max_prose_examples"`
}

// Logging selects the log format and minimum level.
type Logging struct {
	Format string `toml:"format" json:"format"`
	Level  string `toml:"level" json:"level"`
}

// Config encapsulates all configuration values for lexweave.
//
// Sections:
//   - Paths: tranche lifecycle directories, output area, manifest database
//   - Merge: version stamped on unified artifacts and source labeling
//   - Baseline: prior stable release used for consistency checking
//   - Exclusions: registry of intentionally preserved terms
//   - QA: weighted gate threshold and homonym policy
//   - Audit: advisory report rendering limits
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths" json:"paths"`
	Merge      Merge      `toml:"merge" json:"merge"`
	Baseline   Baseline   `toml:"baseline" json:"baseline"`
	Exclusions Exclusions `toml:"exclusions" json:"exclusions"`
	QA         QA         `toml:"qa" json:"qa"`
	Audit      Audit      `toml:"audit" json:"audit"`
	Logging    Logging    `toml:"logging" json:"logging"`
}

// DefaultConfigPath returns where lexweave looks for its config when no
// explicit path is given.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lexweave/config.toml")
}

// Load resolves, parses, and validates a configuration file. Every path
// field in the returned config is expanded and absolute.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/lexweave/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lexweave.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the working directories a pipeline run needs.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.PendingDir,
		c.Paths.MergedDir,
		c.Paths.DeletedDir,
		c.Paths.OutputDir,
		c.Paths.LogDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dir := filepath.Dir(c.Paths.ManifestPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath applies the config path expansion rules (tilde resolution,
// cleaning, absolutization) for callers outside this package.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the embedded sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
