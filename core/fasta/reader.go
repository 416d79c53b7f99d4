// core/fasta/reader.go
package fasta

import (
	"context"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// StreamPathCtx opens path ("-" for stdin, gzip transparently) and streams its
// records to emit. Open errors are returned before anything is emitted.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// ReadAll loads every record of path into memory.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
