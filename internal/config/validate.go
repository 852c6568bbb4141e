package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate rejects configurations the pipeline could not run with.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateQA(); err != nil {
		return err
	}
	if err := c.validateAudit(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	required := map[string]string{
		"paths.pending_dir":   c.Paths.PendingDir,
		"paths.merged_dir":    c.Paths.MergedDir,
		"paths.deleted_dir":   c.Paths.DeletedDir,
		"paths.output_dir":    c.Paths.OutputDir,
		"paths.manifest_path": c.Paths.ManifestPath,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	distinct := map[string]string{
		c.Paths.PendingDir: "paths.pending_dir",
		c.Paths.MergedDir:  "paths.merged_dir",
		c.Paths.DeletedDir: "paths.deleted_dir",
	}
	if len(distinct) != 3 {
		return errors.New("paths.pending_dir, paths.merged_dir, and paths.deleted_dir must be distinct directories")
	}
	return nil
}

func (c *Config) validateMerge() error {
	if strings.TrimSpace(c.Merge.DictionaryVersion) == "" {
		return errors.New("merge.dictionary_version must be set")
	}
	return nil
}

func (c *Config) validateQA() error {
	if c.QA.GateThreshold < 1 || c.QA.GateThreshold > 100 {
		return errors.New("qa.gate_threshold must be between 1 and 100")
	}
	return nil
}

func (c *Config) validateAudit() error {
	if c.Audit.MaxProseExamples < 1 {
		return errors.New("audit.max_prose_examples must be >= 1")
	}
	return nil
}
