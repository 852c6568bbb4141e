// Package audit runs four advisory linguistic checks over a unified
// dictionary snapshot: suspicious derivation patterns, weak etymology,
// cultural anachronisms, and missing notes on culturally loaded terms.
//
// The audit never gates the pipeline. Its score is informational, and every
// finding is first tested against the exclusion registry: a match removes
// the finding from the report and records a suppression event in its place,
// so deliberate canon terms stay visible in the audit trail without
// cluttering the findings.
package audit
