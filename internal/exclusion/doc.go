// Package exclusion loads the curated registry of intentionally preserved
// terms. The audit engine consults it before reporting a finding; a match
// suppresses the finding and leaves a logged suppression event in its place,
// so curator decisions override heuristics without becoming invisible.
//
// Matching is exact by default. Callers opt into case folding, diacritic
// stripping, and hyphen/dash unification per configuration; the flags widen
// alias matching only and never rewrite the stored terms.
package exclusion
