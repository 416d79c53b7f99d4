package align

import "math/bits"

// Distance returns the unit-cost edit distance between a and b without
// building the move matrix. It keeps two rows over the shorter input, so
// memory is O(min(len(a), len(b))).
func Distance(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b)
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		ai := a[i-1]
		for j := 1; j <= n; j++ {
			if ai == b[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			best := cur[j-1]
			if prev[j] < best {
				best = prev[j]
			}
			if prev[j-1] < best {
				best = prev[j-1]
			}
			cur[j] = best + 1
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// BoundedDistance reports whether the edit distance between a and b is at
// most limit. Only the diagonal band of width 2*limit+1 is evaluated and the
// scan stops once every cell of a row exceeds limit, so the cost is
// O(min(len(a), len(b)) * limit) at worst. The returned distance is exact
// when ok is true and limit+1 otherwise.
func BoundedDistance(a, b string, limit int) (d int, ok bool) {
	if limit < 0 {
		return 0, false
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	m, n := len(a), len(b)
	over := limit + 1
	if m-n > limit {
		return over, false
	}

	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := range prev {
		prev[j] = min(j, over)
	}
	for i := 1; i <= m; i++ {
		lo, hi := max(1, i-limit), min(n, i+limit)
		// Cells just outside the band read as over.
		if lo == 1 {
			cur[0] = min(i, over)
		} else {
			cur[lo-1] = over
		}
		if hi < n {
			cur[hi+1] = over
		}
		best := cur[lo-1]
		ai := a[i-1]
		for j := lo; j <= hi; j++ {
			v := prev[j-1]
			if ai != b[j-1] {
				v = min(cur[j-1], prev[j], v) + 1
				if v > over {
					v = over
				}
			}
			cur[j] = v
			if v < best {
				best = v
			}
		}
		if best > limit {
			return over, false
		}
		prev, cur = cur, prev
	}
	return prev[n], prev[n] <= limit
}

// Cells is the number of matrix cells Fill allocates for inputs of length m
// and n, saturating at the largest int64 instead of overflowing.
func Cells(m, n int) int64 {
	const maxInt64 = int64(^uint64(0) >> 1)
	hi, lo := bits.Mul64(uint64(m)+1, uint64(n)+1)
	if hi != 0 || lo > uint64(maxInt64) {
		return maxInt64
	}
	return int64(lo)
}
