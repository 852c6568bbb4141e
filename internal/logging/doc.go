// Package logging builds the slog loggers used throughout lexweave.
//
// New constructs a logger from Options, choosing between a human-readable
// console handler and plain JSON output, and NewFromConfig wires the
// configured level, format, and log file in one call. Shared field-name
// constants keep run IDs, stage names, and tranche identifiers spelled the
// same in every package, and NewNop gives tests and optional wiring a
// logger that drops everything.
//
// Components should obtain their logger here instead of assembling slog
// handlers locally, so all output lands in the same sinks with the same
// line shape.
package logging
