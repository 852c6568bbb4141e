// Package qa scores a unified dictionary snapshot against seven weighted
// linguistic quality categories and decides whether it clears the promotion
// gate. Categories are pure functions over the immutable snapshot and run in
// parallel; the weighted overall score is deterministic for a given input.
//
// An optional baseline consistency check compares the snapshot against a
// prior release. It is reported separately and never participates in the
// weighted sum, so dictionaries without a baseline are not penalized.
package qa
