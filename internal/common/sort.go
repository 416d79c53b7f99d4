// internal/common/sort.go
package common

import (
	"sort"

	"seqalign/internal/engine"
)

// LessResult defines a stable order for results (for --sort):
// closest first, then by query and target ID.
func LessResult(a, b engine.Result) bool {
	if a.Distance() != b.Distance() {
		return a.Distance() < b.Distance()
	}
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	return a.TargetID < b.TargetID
}

// SortResults orders rs by LessResult, keeping input order among equal keys.
func SortResults(rs []engine.Result) {
	sort.SliceStable(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
