// Package tranche discovers and parses vocabulary fragments. A fragment may
// be shaped as a flat English-to-spelling map, a list of entry records, or a
// sectioned document; detection happens once per file and every shape
// normalizes to the same canonical entry list before any downstream component
// sees the data.
//
// Files whose names mark them as pipeline outputs or parked drafts (unified
// artifacts, reports, changelogs, underscore-prefixed files) are skipped
// during discovery so a run never re-merges its own products.
package tranche
