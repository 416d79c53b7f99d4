package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqalign/core/align"
	"seqalign/internal/engine"
)

func res(q, t string, d int, src string) engine.Result {
	return engine.Result{QueryID: q, TargetID: t, SourceFile: src, Alignment: align.Alignment{Distance: d}}
}

func TestSortResults(t *testing.T) {
	rs := []engine.Result{
		res("q2", "a", 1, ""),
		res("q1", "b", 3, ""),
		res("q1", "b", 1, ""),
		res("q1", "a", 1, ""),
		res("q1", "a", 1, "second.fa"),
		res("q1", "z", 0, ""),
	}
	SortResults(rs)

	type key struct {
		q, t string
		d    int
		src  string
	}
	var got []key
	for _, r := range rs {
		got = append(got, key{r.QueryID, r.TargetID, r.Distance(), r.SourceFile})
	}
	assert.Equal(t, []key{
		{"q1", "z", 0, ""},
		{"q1", "a", 1, ""},
		{"q1", "a", 1, "second.fa"},
		{"q1", "b", 1, ""},
		{"q2", "a", 1, ""},
		{"q1", "b", 3, ""},
	}, got)
}
