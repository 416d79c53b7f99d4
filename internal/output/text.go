// internal/output/text.go
package output

import (
	"io"

	"seqalign/internal/engine"
	"seqalign/internal/pretty"
)

// writeRecord prints the summary line followed by the alignment blocks.
// Records are separated by one blank line.
func writeRecord(w io.Writer, r engine.Result, popt pretty.Options, first bool) error {
	if !first {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, pretty.RenderSummary(r.QueryID, r.TargetID, r.TargetLen, r.Alignment)); err != nil {
		return err
	}
	_, err := io.WriteString(w, pretty.RenderAlignment(r.Alignment, popt))
	return err
}

// WriteText renders a slice of results as human-readable blocks.
func WriteText(w io.Writer, list []engine.Result, popt pretty.Options) error {
	for i, r := range list {
		if err := writeRecord(w, r, popt, i == 0); err != nil {
			return err
		}
	}
	return nil
}

// StreamText renders results as they arrive on in.
func StreamText(w io.Writer, in <-chan engine.Result, popt pretty.Options) error {
	first := true
	for r := range in {
		if err := writeRecord(w, r, popt, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}
