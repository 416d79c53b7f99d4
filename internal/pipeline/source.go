package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"seqalign/core/fasta"
)

// Source streams target records, tagged with the file they came from.
type Source func(ctx context.Context, emit func(file string, rec fasta.Record) error) error

// FileSource reads every record of each path in order ("-" is stdin).
// Read and parse errors are prefixed with the path; errors from emit pass
// through unchanged.
func FileSource(paths []string) Source {
	return func(ctx context.Context, emit func(string, fasta.Record) error) error {
		for _, p := range paths {
			var emitErr error
			err := fasta.StreamPathCtx(ctx, p, func(r fasta.Record) error {
				emitErr = emit(p, r)
				return emitErr
			})
			var pathErr *fs.PathError
			switch {
			case err == nil:
			case err == emitErr, err == ctx.Err(), errors.As(err, &pathErr):
				return err
			default:
				return fmt.Errorf("%s: %w", p, err)
			}
		}
		return nil
	}
}

// RecordSource serves in-memory records, e.g. sequences given on the command line.
func RecordSource(file string, recs ...fasta.Record) Source {
	return func(ctx context.Context, emit func(string, fasta.Record) error) error {
		for _, r := range recs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(file, r); err != nil {
				return err
			}
		}
		return nil
	}
}
