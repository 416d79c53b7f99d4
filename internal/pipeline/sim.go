// internal/pipeline/sim.go
package pipeline

import (
	"seqalign/core/fasta"
	"seqalign/internal/engine"
)

// Aligner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Aligner interface {
	Prepare(rec fasta.Record) (fasta.Record, error)
	Admit(queryID, targetID string, m, n int) error
	Within(q, t fasta.Record, maxDist int) bool
	AlignPair(q, t fasta.Record) (engine.Result, error)
}
