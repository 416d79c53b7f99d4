// core/align/matrix.go
package align

// Move records which predecessor produced the optimal value of a cell.
type Move uint8

const (
	// Terminal marks the (0,0) origin; nothing precedes it.
	Terminal Move = iota
	// Insertion consumes one character of b (arrives from the left).
	Insertion
	// Deletion consumes one character of a (arrives from above).
	Deletion
	// Substitution consumes one character from each side, differing.
	Substitution
	// Match consumes one identical character from each side.
	Match
)

var moveNames = [...]string{
	Terminal:     "terminal",
	Insertion:    "insertion",
	Deletion:     "deletion",
	Substitution: "substitution",
	Match:        "match",
}

func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return "unknown"
}

// Table holds the filled distance and move matrices for one pair.
// Both are flat (m+1)*(n+1) buffers indexed by i*(n+1)+j, so a cell costs
// five bytes. Distances are bounded by max(m, n) and fit in an int32 for any
// pair whose matrices fit in memory.
type Table struct {
	a, b  string
	cols  int
	dist  []int32
	moves []Move
}

// Fill computes the distance and move matrices for a against b.
func Fill(a, b string) *Table {
	m, n := len(a), len(b)
	cols := n + 1
	t := &Table{
		a:     a,
		b:     b,
		cols:  cols,
		dist:  make([]int32, (m+1)*cols),
		moves: make([]Move, (m+1)*cols),
	}

	for j := 1; j <= n; j++ {
		t.dist[j] = int32(j)
		t.moves[j] = Insertion
	}
	for i := 1; i <= m; i++ {
		row := i * cols
		up := row - cols
		t.dist[row] = int32(i)
		t.moves[row] = Deletion

		ai := a[i-1]
		for j := 1; j <= n; j++ {
			if ai == b[j-1] {
				t.dist[row+j] = t.dist[up+j-1]
				t.moves[row+j] = Match
				continue
			}
			t.dist[row+j], t.moves[row+j] = pick(
				t.dist[row+j-1]+1, // insert
				t.dist[up+j]+1,    // delete
				t.dist[up+j-1]+1,  // substitute
			)
		}
	}
	return t
}

// pick applies the fixed tie-break: insertion beats deletion on ties, and
// either of them beats substitution on ties.
func pick(ins, del, sub int32) (int32, Move) {
	if ins <= del {
		if ins <= sub {
			return ins, Insertion
		}
		return sub, Substitution
	}
	if sub <= del {
		return sub, Substitution
	}
	return del, Deletion
}

// Rows is m+1.
func (t *Table) Rows() int { return len(t.dist) / t.cols }

// Cols is n+1.
func (t *Table) Cols() int { return t.cols }

// Distance returns the edit distance between a[:i] and b[:j].
func (t *Table) Distance(i, j int) int { return int(t.dist[i*t.cols+j]) }

// Move returns the recorded predecessor move for cell (i, j).
func (t *Table) Move(i, j int) Move { return t.moves[i*t.cols+j] }

// Total is the distance between the full inputs.
func (t *Table) Total() int { return int(t.dist[len(t.dist)-1]) }
