// core/consensus/consensus.go
//
// Consensus penalty tables: per profile column, symbols attaining the column's
// maximum count (the consensus set) score 0 and every other symbol -unity.
//
// This package has no app/output deps; score can import it cleanly.
package consensus

import "profseq-core/profile"

// Table is a flat column-major penalty table of Columns()*AlphabetSize()
// entries. It is immutable once built and safe for concurrent reads.
type Table struct {
	size int
	cols int
	pen  []int
}

// Build converts per-column symbol counts into a penalty table. Each column
// must hold at least size counts; extra entries are ignored.
//
// Two passes per column: the maximum count has to be known before any
// penalty of that column can be emitted. Ties at the maximum all land in the
// consensus set. An all-zero column has maximum 0, so its whole row is 0.
func Build(columns [][]int, size, unity int) Table {
	if size <= 0 || len(columns) == 0 {
		return Table{size: max(size, 0)}
	}
	t := Table{size: size, cols: len(columns), pen: make([]int, size*len(columns))}
	k := 0
	for _, counts := range columns {
		maxCount := 0
		for i := 0; i < size; i++ {
			if counts[i] > maxCount {
				maxCount = counts[i]
			}
		}
		for i := 0; i < size; i++ {
			if counts[i] != maxCount {
				t.pen[k] = -unity
			}
			k++
		}
	}
	return t
}

// FromProfile builds the table of p over p's alphabet.
func FromProfile(p *profile.Profile, unity int) Table {
	return Build(p.Counts(), p.Alphabet.Size(), unity)
}

// At returns the penalty of symbol ord in column col. Both must be in range;
// see index.
func (t Table) At(col, ord int) int { return t.pen[t.index(col, ord)] }

// Row returns a copy of the penalties of column col.
func (t Table) Row(col int) []int {
	start := t.index(col, 0)
	return append([]int(nil), t.pen[start:start+t.size]...)
}

// InConsensus reports whether symbol ord belongs to the consensus set of col.
func (t Table) InConsensus(col, ord int) bool { return t.At(col, ord) == 0 }

func (t Table) Columns() int      { return t.cols }
func (t Table) AlphabetSize() int { return t.size }
func (t Table) Len() int          { return len(t.pen) }
func (t Table) Empty() bool       { return len(t.pen) == 0 }
