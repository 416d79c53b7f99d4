// internal/engine/result.go
package engine

import "seqalign/core/align"

// Result is one aligned (query, target) pair.
type Result struct {
	QueryID           string
	TargetID          string
	TargetDescription string
	SourceFile        string

	QueryLen  int
	TargetLen int

	Alignment align.Alignment
}

// Distance is shorthand for r.Alignment.Distance.
func (r Result) Distance() int { return r.Alignment.Distance }
