// Package align computes unit-cost global alignments between two sequences.
//
// The engine is alphabet-agnostic and works on bytes: every byte of the
// input is one residue. Results are deterministic; when several optimal
// alignments exist, the one selected follows a fixed tie-break (see Fill).
package align

const (
	// Gap fills the side of a column that consumed no residue.
	Gap = '-'
	// MatchMark is the track glyph for identical residues.
	MatchMark = '|'
	// Blank is the track glyph for every other column.
	Blank = ' '
)

// Alignment is one optimal global alignment of a against b.
// Top, Track and Bottom always have the same length.
type Alignment struct {
	Top      string
	Track    string
	Bottom   string
	Distance int

	// Ops holds the move that produced each column, left to right.
	Ops []Move
}

// Align fills the matrices for a and b and walks them back into an Alignment.
func Align(a, b string) Alignment {
	return Fill(a, b).Traceback()
}

// Traceback reconstructs the alignment from (m, n) back to the origin.
// Columns are written back-to-front into buffers sized for the worst case.
func (t *Table) Traceback() Alignment {
	i, j := len(t.a), len(t.b)
	size := i + j
	top := make([]byte, size)
	mid := make([]byte, size)
	bot := make([]byte, size)
	ops := make([]Move, size)
	pos := size

	for i > 0 || j > 0 {
		mv := t.Move(i, j)
		switch mv {
		case Insertion:
			if j > 0 {
				pos--
				top[pos], mid[pos], bot[pos] = Gap, Blank, t.b[j-1]
				ops[pos] = mv
			}
			j--
		case Deletion:
			if i > 0 {
				pos--
				top[pos], mid[pos], bot[pos] = t.a[i-1], Blank, Gap
				ops[pos] = mv
			}
			i--
		case Substitution, Match:
			if i > 0 && j > 0 {
				pos--
				top[pos], bot[pos] = t.a[i-1], t.b[j-1]
				mid[pos] = Blank
				if mv == Match {
					mid[pos] = MatchMark
				}
				ops[pos] = mv
			}
			i--
			j--
		default:
			// Only the origin is terminal, and the loop never visits it.
			panic("align: traceback reached a terminal cell before the origin")
		}
	}

	return Alignment{
		Top:      string(top[pos:]),
		Track:    string(mid[pos:]),
		Bottom:   string(bot[pos:]),
		Distance: t.Total(),
		Ops:      ops[pos:],
	}
}

// Columns is the alignment length.
func (al Alignment) Columns() int { return len(al.Ops) }

// Stats counts columns per move.
type Stats struct {
	Matches       int
	Substitutions int
	Insertions    int
	Deletions     int
}

// Stats tallies the columns of al.
func (al Alignment) Stats() Stats {
	var s Stats
	for _, op := range al.Ops {
		switch op {
		case Match:
			s.Matches++
		case Substitution:
			s.Substitutions++
		case Insertion:
			s.Insertions++
		case Deletion:
			s.Deletions++
		}
	}
	return s
}

// Identity is the fraction of columns that are matches; 0 for an empty alignment.
func (al Alignment) Identity() float64 {
	if len(al.Ops) == 0 {
		return 0
	}
	return float64(al.Stats().Matches) / float64(len(al.Ops))
}
