// Package main hosts the lexweave CLI entrypoint and command graph.
//
// The Cobra command tree drives the dictionary batch pipeline from the
// terminal: full runs over the pending tranche area, standalone merge, QA,
// and audit previews, manifest history, headword lookups against promoted
// artifacts, and configuration scaffolding. Configuration resolution and
// manifest access live in the shared command context so subcommands focus
// on rendering.
//
// Keep this package lean: new behavior belongs in the internal packages
// first and is surfaced here through dedicated commands or flags.
package main
