// Package pipeline drives one dictionary batch from pending fragments to a
// promoted unified artifact.
//
// A run is a linear sequence: merge the pending tranche set, write the
// unified artifact, relocate the consumed fragments to the merged area,
// score the snapshot against the weighted QA gate, and either promote the
// set to the deleted area (gate cleared, advisory audit runs) or leave it
// merged for remediation (gate failed). Every step lands in the manifest, so
// the run record is the authoritative history and the directory moves are
// the physical backing.
//
// Relocations are transactional: each file moves by verified copy plus
// source removal, and a partial failure rolls the already-moved files back.
// Invocations serialize on a file lock. Report persistence failures are
// logged and never alter a gate decision already made.
package pipeline
