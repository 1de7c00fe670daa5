package audit

import "github.com/vango-dev/ariaid/pkg/ids"

// MismatchKind classifies a hydration mismatch.
type MismatchKind string

const (
	MismatchChanged MismatchKind = "changed"
	MismatchMissing MismatchKind = "missing"
	MismatchExtra   MismatchKind = "extra"
)

// Mismatch is one position where two passes disagree.
type Mismatch struct {
	Kind     MismatchKind `json:"kind"`
	Position int          `json:"position"`
	Server   string       `json:"server,omitempty"`
	Client   string       `json:"client,omitempty"`
}

// Compare lines up the IDs of a server pass and a client pass position by
// position. IDs the client does not reach are "missing"; IDs only the client
// produces are "extra".
func Compare(server, client []string) []Mismatch {
	var out []Mismatch
	n := len(server)
	if len(client) > n {
		n = len(client)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(client):
			out = append(out, Mismatch{Kind: MismatchMissing, Position: i, Server: server[i]})
		case i >= len(server):
			out = append(out, Mismatch{Kind: MismatchExtra, Position: i, Client: client[i]})
		case server[i] != client[i]:
			out = append(out, Mismatch{Kind: MismatchChanged, Position: i, Server: server[i], Client: client[i]})
		}
	}
	return out
}

// CompareRecords compares two allocator record logs by ID.
func CompareRecords(server, client []ids.Record) []Mismatch {
	return Compare(recordIDs(server), recordIDs(client))
}

func recordIDs(records []ids.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
