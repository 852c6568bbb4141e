// Package libran defines the dictionary domain model shared by every
// pipeline stage: entries with their tagged string-or-map translation forms,
// the unified artifact with its build metadata, and the donor-language
// signature tables that QA and audit heuristics consult.
//
// All text entering the model is normalized to Unicode NFC with surrounding
// whitespace trimmed, so comparisons and dedupe keys behave identically no
// matter which tranche shape a spelling arrived in.
package libran
