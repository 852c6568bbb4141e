package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeBaseline(); err != nil {
		return err
	}
	if err := c.normalizeExclusions(); err != nil {
		return err
	}
	if err := c.normalizeQA(); err != nil {
		return err
	}
	c.normalizeMerge()
	c.normalizeAudit()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.PendingDir, err = expandPath(c.Paths.PendingDir); err != nil {
		return fmt.Errorf("paths.pending_dir: %w", err)
	}
	if c.Paths.MergedDir, err = expandPath(c.Paths.MergedDir); err != nil {
		return fmt.Errorf("paths.merged_dir: %w", err)
	}
	if c.Paths.DeletedDir, err = expandPath(c.Paths.DeletedDir); err != nil {
		return fmt.Errorf("paths.deleted_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ManifestPath) == "" {
		c.Paths.ManifestPath = defaultManifestPath
	}
	if c.Paths.ManifestPath, err = expandPath(c.Paths.ManifestPath); err != nil {
		return fmt.Errorf("paths.manifest_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeMerge() {
	c.Merge.DictionaryVersion = strings.TrimSpace(c.Merge.DictionaryVersion)
	if c.Merge.DictionaryVersion == "" {
		c.Merge.DictionaryVersion = defaultDictionaryVersion
	}
	c.Merge.SourceLabel = strings.TrimSpace(c.Merge.SourceLabel)
	if c.Merge.SourceLabel == "" {
		c.Merge.SourceLabel = defaultSourceLabel
	}
}

func (c *Config) normalizeBaseline() error {
	c.Baseline.Path = strings.TrimSpace(c.Baseline.Path)
	if c.Baseline.Path == "" {
		return nil
	}
	expanded, err := expandPath(c.Baseline.Path)
	if err != nil {
		return fmt.Errorf("baseline.path: %w", err)
	}
	c.Baseline.Path = expanded
	return nil
}

func (c *Config) normalizeExclusions() error {
	c.Exclusions.Path = strings.TrimSpace(c.Exclusions.Path)
	if c.Exclusions.Path == "" {
		return nil
	}
	expanded, err := expandPath(c.Exclusions.Path)
	if err != nil {
		return fmt.Errorf("exclusions.path: %w", err)
	}
	c.Exclusions.Path = expanded
	return nil
}

func (c *Config) normalizeQA() error {
	if c.QA.GateThreshold <= 0 {
		c.QA.GateThreshold = defaultGateThreshold
	}
	c.QA.HomonymPolicyPath = strings.TrimSpace(c.QA.HomonymPolicyPath)
	if c.QA.HomonymPolicyPath == "" {
		return nil
	}
	expanded, err := expandPath(c.QA.HomonymPolicyPath)
	if err != nil {
		return fmt.Errorf("qa.homonym_policy_path: %w", err)
	}
	c.QA.HomonymPolicyPath = expanded
	return nil
}

func (c *Config) normalizeAudit() {
	if c.Audit.MaxProseExamples <= 0 {
		c.Audit.MaxProseExamples = defaultMaxProseExamples
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
