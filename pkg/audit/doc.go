// Package audit checks rendered HTML for hydration and accessibility hazards.
//
// HTML parses a document and reports element IDs that look
// non-deterministic, IDs used more than once, and ARIA or label references
// that point at no element. Compare and CompareRecords line up the IDs of two
// render passes (typically server and hydration) and report where they
// diverge.
package audit
