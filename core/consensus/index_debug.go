// core/consensus/index_debug.go

//go:build profdebug

package consensus

import "fmt"

// index maps (col, ord) to a flat offset, panicking on out-of-range input.
func (t Table) index(col, ord int) int {
	if col < 0 || col >= t.cols {
		panic(fmt.Sprintf("consensus: column %d out of range [0,%d)", col, t.cols))
	}
	if ord < 0 || ord >= t.size {
		panic(fmt.Sprintf("consensus: symbol ordinal %d out of range [0,%d)", ord, t.size))
	}
	return col*t.size + ord
}
