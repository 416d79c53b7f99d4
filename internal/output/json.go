// internal/output/json.go
package output

import (
	"io"

	"seqalign/internal/engine"
	"seqalign/internal/jsonutil"
	"seqalign/pkg/api"
)

// ToAPIAlignment converts a domain Result to the stable wire schema (v1).
func ToAPIAlignment(r engine.Result) api.AlignmentV1 {
	al := r.Alignment
	s := al.Stats()
	return api.AlignmentV1{
		QueryID:      r.QueryID,
		TargetID:     r.TargetID,
		QueryLength:  r.QueryLen,
		TargetLength: r.TargetLen,
		Distance:     al.Distance,
		Columns:      al.Columns(),
		Matches:      s.Matches,
		Mismatches:   s.Substitutions,
		Insertions:   s.Insertions,
		Deletions:    s.Deletions,
		Identity:     al.Identity(),
		Top:          al.Top,
		Track:        al.Track,
		Bottom:       al.Bottom,
		SourceFile:   r.SourceFile,
		Description:  r.TargetDescription,
	}
}

func toAPIAlignments(list []engine.Result) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIAlignment(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}
