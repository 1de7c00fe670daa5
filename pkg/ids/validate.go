package ids

import "regexp"

// ViolationKind names a non-determinism heuristic.
type ViolationKind string

const (
	ViolationEmpty        ViolationKind = "empty"
	ViolationRandomCall   ViolationKind = "random-call"
	ViolationTimeCall     ViolationKind = "time-call"
	ViolationUUID         ViolationKind = "uuid"
	ViolationLongNumber   ViolationKind = "long-number"
	ViolationISOTimestamp ViolationKind = "iso-timestamp"
)

// Violation is one heuristic match inside an ID.
type Violation struct {
	Kind  ViolationKind `json:"kind"`
	Match string        `json:"match,omitempty"`
}

var rules = []struct {
	kind ViolationKind
	re   *regexp.Regexp
}{
	{ViolationRandomCall, regexp.MustCompile(`(?i)math\.random|crypto\.random\w*|rand\.\w+\(`)},
	{ViolationTimeCall, regexp.MustCompile(`(?i)date\.now|new date\(|performance\.now|time\.now`)},
	{ViolationUUID, regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)},
	{ViolationISOTimestamp, regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}`)},
	// 13+ digits reads as epoch milliseconds.
	{ViolationLongNumber, regexp.MustCompile(`\d{13,}`)},
}

// Inspect returns every heuristic an ID trips. A nil result means the ID
// looks deterministic.
func Inspect(id string) []Violation {
	if id == "" {
		return []Violation{{Kind: ViolationEmpty}}
	}
	var out []Violation
	for _, r := range rules {
		if m := r.re.FindString(id); m != "" {
			out = append(out, Violation{Kind: r.kind, Match: m})
		}
	}
	return out
}

// Validate reports whether id is free of non-deterministic patterns. It is
// meant for tests and audits, not for gating rendering.
func Validate(id string) bool {
	return len(Inspect(id)) == 0
}
