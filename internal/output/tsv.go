// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"seqalign/internal/engine"
)

// FormatRowTSV returns one TSV row (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	al := r.Alignment
	s := al.Stats()
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.4f",
		r.SourceFile, r.QueryID, r.TargetID,
		r.QueryLen, r.TargetLen,
		al.Distance, al.Columns(),
		s.Matches, s.Substitutions, s.Insertions, s.Deletions,
		al.Identity(),
	)
}

// WriteTSV writes results as a tab-delimited table.
func WriteTSV(w io.Writer, list []engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV writes rows as they arrive on in.
func StreamTSV(w io.Writer, in <-chan engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
