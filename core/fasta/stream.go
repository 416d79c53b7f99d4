// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned when sequence data appears before the first '>' line.
var ErrNoHeader = errors.New("fasta: sequence data before first header")

// StreamCtx parses FASTA from r and calls emit once per record, in file order.
// Blank lines and ';' comment lines are skipped; sequence lines are joined with
// surrounding whitespace trimmed.
//
// It is cancelable: it returns ctx.Err() promptly when ctx is done, even
// mid-record.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		open   bool
		id     string
		desc   string
		seq    = make([]byte, 0, 1<<16)
		lineNo int
	)

	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{ID: id, Description: desc, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			open = true
			id, desc = parseHeader(line[1:])
			seq = seq[:0]
			continue
		}
		if !open {
			return fmt.Errorf("line %d: %w", lineNo, ErrNoHeader)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// parseHeader splits a header into its ID (up to the first blank) and the
// free-text description that follows.
func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
