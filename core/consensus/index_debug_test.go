//go:build profdebug

package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtPanicsOutOfRange(t *testing.T) {
	tbl := Build([][]int{{1, 0, 0, 0}}, 4, unity)
	assert.PanicsWithValue(t, "consensus: column 1 out of range [0,1)", func() { tbl.At(1, 0) })
	assert.PanicsWithValue(t, "consensus: symbol ordinal 4 out of range [0,4)", func() { tbl.At(0, 4) })
	assert.PanicsWithValue(t, "consensus: column -1 out of range [0,1)", func() { tbl.At(-1, 3) })
}
