package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqalign/core/align"
	"seqalign/core/fasta"
	"seqalign/core/sequence"
	"seqalign/internal/engine"
)

// Compile-time check: the concrete engine satisfies the minimal contract.
var _ Aligner = (*engine.Engine)(nil)

func writeFASTA(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "targets.fa")
	require.NoError(t, os.WriteFile(fn, []byte(body), 0o644))
	return fn
}

func collect(t *testing.T, cfg Config, eng Aligner, queries []fasta.Record, src Source) ([]engine.Result, Stats, error) {
	t.Helper()
	var got []engine.Result
	st, err := ForEachAlignment(context.Background(), cfg, eng, queries, src, func(r engine.Result) error {
		got = append(got, r)
		return nil
	})
	return got, st, err
}

func TestForEachAlignment_PreservesInputOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, ">t%02d\n%s\n", i, strings.Repeat("ACGT", i%7+1))
	}
	fn := writeFASTA(t, b.String())
	queries := []fasta.Record{
		{ID: "q1", Seq: []byte("ACGTACGT")},
		{ID: "q2", Seq: []byte("TTTT")},
	}

	got, st, err := collect(t, Config{Threads: 8, MaxDistance: -1}, engine.New(engine.Config{}), queries, FileSource([]string{fn}))
	require.NoError(t, err)
	require.Len(t, got, 80)
	assert.Equal(t, Stats{Pairs: 80, Emitted: 80}, st)
	for i, r := range got {
		assert.Equal(t, fmt.Sprintf("t%02d", i/2), r.TargetID)
		assert.Equal(t, queries[i%2].ID, r.QueryID)
		assert.Equal(t, fn, r.SourceFile)
	}
}

func TestForEachAlignment_MaxDistanceFilters(t *testing.T) {
	src := RecordSource("cli",
		fasta.Record{ID: "near", Seq: []byte("ACGTACGA")},
		fasta.Record{ID: "far", Seq: []byte("TTTTTTTT")},
		fasta.Record{ID: "short", Seq: []byte("A")},
	)
	q := []fasta.Record{{ID: "q", Seq: []byte("ACGTACGT")}}

	got, st, err := collect(t, Config{Threads: 2, MaxDistance: 2}, engine.New(engine.Config{}), q, src)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].TargetID)
	assert.Equal(t, 1, got[0].Distance())
	assert.Equal(t, Stats{Pairs: 3, Emitted: 1, Filtered: 2}, st)
}

func TestForEachAlignment_OversizeSkip(t *testing.T) {
	src := RecordSource("cli",
		fasta.Record{ID: "small", Seq: []byte("AC")},
		fasta.Record{ID: "big", Seq: []byte(strings.Repeat("A", 100))},
	)
	q := []fasta.Record{{ID: "q", Seq: []byte("ACGT")}}
	eng := engine.New(engine.Config{MaxCells: 50})

	got, st, err := collect(t, Config{Threads: 1, MaxDistance: -1, OnOversize: OversizeSkip}, eng, q, src)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "small", got[0].TargetID)
	assert.Equal(t, 1, st.Oversize)
}

func TestForEachAlignment_OversizeFail(t *testing.T) {
	src := RecordSource("cli", fasta.Record{ID: "big", Seq: []byte(strings.Repeat("A", 100))})
	q := []fasta.Record{{ID: "q", Seq: []byte("ACGT")}}
	eng := engine.New(engine.Config{MaxCells: 50})

	_, _, err := collect(t, Config{Threads: 2, MaxDistance: -1, OnOversize: OversizeFail}, eng, q, src)
	require.ErrorIs(t, err, engine.ErrCapacity)
}

// meteredAligner tracks the matrix cells held by concurrent AlignPair calls.
type meteredAligner struct {
	*engine.Engine
	mu       sync.Mutex
	inFlight int64
	peak     int64
}

func (m *meteredAligner) AlignPair(q, t fasta.Record) (engine.Result, error) {
	c := align.Cells(len(q.Seq), len(t.Seq))
	m.mu.Lock()
	m.inFlight += c
	m.peak = max(m.peak, m.inFlight)
	m.mu.Unlock()

	time.Sleep(2 * time.Millisecond)
	res, err := m.Engine.AlignPair(q, t)

	m.mu.Lock()
	m.inFlight -= c
	m.mu.Unlock()
	return res, err
}

func TestForEachAlignment_CellBudgetBoundsConcurrentMatrices(t *testing.T) {
	recs := make([]fasta.Record, 32)
	for i := range recs {
		recs[i] = fasta.Record{ID: fmt.Sprint(i), Seq: []byte(strings.Repeat("ACGT", 25))}
	}
	q := []fasta.Record{{ID: "q", Seq: []byte(strings.Repeat("TGCA", 25))}}
	perPair := align.Cells(100, 100)

	for _, tc := range []struct {
		name   string
		budget int64
		limit  int64
	}{
		{"two pairs at a time", 2 * perPair, 2 * perPair},
		{"budget below one pair", perPair / 2, perPair},
	} {
		t.Run(tc.name, func(t *testing.T) {
			eng := &meteredAligner{Engine: engine.New(engine.Config{})}
			got, st, err := collect(t, Config{Threads: 8, MaxDistance: -1, CellBudget: tc.budget}, eng, q, RecordSource("x", recs...))
			require.NoError(t, err)
			require.Len(t, got, len(recs))
			assert.Equal(t, len(recs), st.Emitted)
			assert.LessOrEqual(t, eng.peak, tc.limit)
			assert.Positive(t, eng.peak)
		})
	}
}

func TestForEachAlignment_NoCellBudgetRunsWorkersTogether(t *testing.T) {
	recs := make([]fasta.Record, 32)
	for i := range recs {
		recs[i] = fasta.Record{ID: fmt.Sprint(i), Seq: []byte(strings.Repeat("ACGT", 25))}
	}
	q := []fasta.Record{{ID: "q", Seq: []byte(strings.Repeat("ACGT", 25))}}
	eng := &meteredAligner{Engine: engine.New(engine.Config{})}
	_, _, err := collect(t, Config{Threads: 4, MaxDistance: -1}, eng, q, RecordSource("x", recs...))
	require.NoError(t, err)
	assert.Greater(t, eng.peak, align.Cells(100, 100))
}

func TestForEachAlignment_VisitErrorStops(t *testing.T) {
	recs := make([]fasta.Record, 50)
	for i := range recs {
		recs[i] = fasta.Record{ID: fmt.Sprint(i), Seq: []byte("ACGT")}
	}
	stop := errors.New("stop")
	n := 0
	_, err := ForEachAlignment(context.Background(), Config{Threads: 4, MaxDistance: -1},
		engine.New(engine.Config{}), []fasta.Record{{ID: "q", Seq: []byte("AC")}}, RecordSource("x", recs...),
		func(engine.Result) error {
			n++
			if n == 3 {
				return stop
			}
			return nil
		})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, n)
}

func TestForEachAlignment_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ForEachAlignment(ctx, Config{Threads: 2, MaxDistance: -1}, engine.New(engine.Config{}),
		[]fasta.Record{{ID: "q", Seq: []byte("AC")}},
		RecordSource("x", fasta.Record{ID: "t", Seq: []byte("AC")}),
		func(engine.Result) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestForEachAlignment_InvalidTarget(t *testing.T) {
	fn := writeFASTA(t, ">ok\nACGT\n>bad\nACGX\n")
	eng := engine.New(engine.Config{Alphabet: sequence.DNA})
	_, _, err := collect(t, Config{Threads: 2, MaxDistance: -1}, eng,
		[]fasta.Record{{ID: "q", Seq: []byte("ACGT")}}, FileSource([]string{fn}))
	require.ErrorIs(t, err, sequence.ErrInvalidResidue)
	assert.Contains(t, err.Error(), fn)
}

func TestForEachAlignment_InvalidQuery(t *testing.T) {
	eng := engine.New(engine.Config{Alphabet: sequence.DNA})
	_, _, err := collect(t, Config{}, eng,
		[]fasta.Record{{ID: "q", Seq: []byte("ACGZ")}}, RecordSource("x"))
	require.ErrorIs(t, err, sequence.ErrInvalidResidue)
}

func TestForEachAlignment_MissingFile(t *testing.T) {
	_, _, err := collect(t, Config{Threads: 1, MaxDistance: -1}, engine.New(engine.Config{}),
		[]fasta.Record{{ID: "q", Seq: []byte("A")}}, FileSource([]string{filepath.Join(t.TempDir(), "none.fa")}))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_ParseErrorNamesFile(t *testing.T) {
	fn := writeFASTA(t, "ACGT\n>late\nA\n")
	err := FileSource([]string{fn})(context.Background(), func(string, fasta.Record) error { return nil })
	require.ErrorIs(t, err, fasta.ErrNoHeader)
	assert.True(t, strings.HasPrefix(err.Error(), fn+": line 1:"))
}

func TestFileSource_EmitErrorUnwrapped(t *testing.T) {
	fn := writeFASTA(t, ">a\nA\n")
	stop := errors.New("stop")
	err := FileSource([]string{fn})(context.Background(), func(string, fasta.Record) error { return stop })
	assert.Equal(t, stop, err)
}
