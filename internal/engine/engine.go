package engine

import (
	"errors"
	"fmt"

	"seqalign/core/align"
	"seqalign/core/fasta"
	"seqalign/core/sequence"
)

// ErrCapacity marks a pair whose DP matrices would exceed the cell budget.
var ErrCapacity = errors.New("alignment exceeds cell budget")

// CapacityError reports which pair was refused and by how much.
type CapacityError struct {
	QueryID, TargetID string
	Cells, Limit      int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s vs %s: %d cells > limit %d: %v", e.QueryID, e.TargetID, e.Cells, e.Limit, ErrCapacity)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// Config controls admission and residue handling.
type Config struct {
	MaxCells  int64 // 0 = unlimited
	Normalize bool  // strip blanks/quotes and uppercase before aligning
	Alphabet  sequence.Alphabet
}

type Engine struct{ cfg Config }

func New(c Config) *Engine {
	if c.Alphabet == "" {
		c.Alphabet = sequence.Any
	}
	return &Engine{cfg: c}
}

// Prepare applies the configured normalization and alphabet check to rec.
// The returned record owns a fresh copy of the sequence.
func (e *Engine) Prepare(rec fasta.Record) (fasta.Record, error) {
	s, err := sequence.Prepare(string(rec.Seq), e.cfg.Normalize, e.cfg.Alphabet)
	if err != nil {
		return rec, fmt.Errorf("record %q: %w", rec.ID, err)
	}
	rec.Seq = []byte(s)
	return rec, nil
}

// Admit refuses pairs whose (m+1)(n+1) matrices exceed MaxCells.
func (e *Engine) Admit(queryID, targetID string, m, n int) error {
	if e.cfg.MaxCells <= 0 {
		return nil
	}
	if cells := align.Cells(m, n); cells > e.cfg.MaxCells {
		return &CapacityError{QueryID: queryID, TargetID: targetID, Cells: cells, Limit: e.cfg.MaxCells}
	}
	return nil
}

// Within reports whether the pair's distance is at most maxDist. It scans
// only the band of width 2*maxDist+1 around the diagonal and gives up as soon
// as a whole row is over the limit, so rejected pairs never allocate the move
// matrix. maxDist < 0 accepts all.
func (e *Engine) Within(q, t fasta.Record, maxDist int) bool {
	if maxDist < 0 {
		return true
	}
	_, ok := align.BoundedDistance(string(q.Seq), string(t.Seq), maxDist)
	return ok
}

// AlignPair aligns a prepared query against a prepared target.
// It returns a *CapacityError when the pair is over budget.
func (e *Engine) AlignPair(q, t fasta.Record) (Result, error) {
	if err := e.Admit(q.ID, t.ID, len(q.Seq), len(t.Seq)); err != nil {
		return Result{}, err
	}
	return Result{
		QueryID:           q.ID,
		TargetID:          t.ID,
		TargetDescription: t.Description,
		QueryLen:          len(q.Seq),
		TargetLen:         len(t.Seq),
		Alignment:         align.Align(string(q.Seq), string(t.Seq)),
	}, nil
}
