// core/score/column_debug.go

//go:build profdebug

package score

import "fmt"

// column asserts that e is a real profile column.
func column(e Entry) int {
	if e.before {
		panic("score: before-start entry on the profile side")
	}
	if e.seq != nil && e.pos >= e.seq.Len() {
		panic(fmt.Sprintf("score: profile column %d out of range [0,%d)", e.pos, e.seq.Len()))
	}
	return e.pos
}
