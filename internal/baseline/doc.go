// Package baseline indexes a prior stable dictionary release for consistency
// lookups. The QA scorer's baseline check and the audit engine both receive
// an Index by injection; nothing here is process-global, so tests substitute
// fixture indexes freely.
package baseline
