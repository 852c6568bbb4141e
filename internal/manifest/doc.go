// Package manifest persists pipeline run records in SQLite and exposes
// helpers for driving their lifecycle.
//
// Each batch invocation creates one Run identified by a UUID. The run moves
// through an explicit state machine (pending, merged, qa_passed or qa_failed,
// deleted) and carries the tranche names it consumed, the scores it earned,
// and the paths of the artifacts it produced. The manifest is the durable
// record of what happened to a tranche set; the physical directory moves are
// only the backing implementation.
//
// Schema changes bump the version in schema.go; users delete the manifest
// database to adopt the new schema.
package manifest
