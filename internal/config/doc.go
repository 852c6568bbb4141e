// Package config defines the TOML configuration surface for lexweave.
//
// Load resolves a config path, applies defaults, expands ~ in every
// directory setting, and validates the result before anything touches the
// filesystem. Config carries all pipeline knobs in one struct: tranche
// lifecycle directories, merge and QA tuning, reference data locations,
// and logging routes.
//
// Downstream packages take a Config rather than reading files or flags
// themselves, so they can trust paths are absolute and values are in range.
package config
