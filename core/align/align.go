// core/align/align.go
//
// Global affine-gap alignment (Gotoh) of a profile against a plain sequence,
// driven by any score.Scheme. Rows i = 0..n count profile columns consumed,
// columns j = 0..m count plain symbols consumed.
//
//	M[i][j] = best(i-1,j-1) + Score(col i-1, sym j-1)
//	H[i][j] = max(M[i-1][j] + OpenH, V[i-1][j] + OpenH, H[i-1][j] + ExtendH)
//	V[i][j] = max(M[i][j-1] + OpenV, H[i][j-1] + OpenV, V[i][j-1] + ExtendV)
//
// Horizontal steps pass the plain entry At(seq, j-1), which is before-start
// on row j == 0, so leading profile columns are charged the flat edge cost.
package align

import (
	"math"
	"strings"

	"github.com/biogo/hts/sam"

	"profseq-core/score"
)

// Op is one alignment step.
type Op byte

const (
	Match  Op = 'M' // profile column against plain symbol
	Delete Op = 'D' // profile column against gap (horizontal)
	Insert Op = 'I' // plain symbol against gap (vertical)
)

// Result is a finished alignment.
type Result struct {
	Score int
	Ops   []Op
}

type state uint8

const (
	stM state = iota
	stH
	stV
	stNone
)

const negInf = math.MinInt / 4

// Global returns the best-scoring global alignment of prof against seq.
func Global(s score.Scheme, prof, seq score.Sequence) Result {
	n, m := prof.Len(), seq.Len()
	w := m + 1

	// Score rows (rolling) and full traceback planes.
	prevM, prevH, prevV := make([]int, w), make([]int, w), make([]int, w)
	curM, curH, curV := make([]int, w), make([]int, w), make([]int, w)
	tbM := make([]state, (n+1)*w)
	tbH := make([]state, (n+1)*w)
	tbV := make([]state, (n+1)*w)

	for i := 0; i <= n; i++ {
		var col score.Entry
		if i > 0 {
			col = s.Entry(prof, i-1)
		} else {
			col = score.BeforeStart(prof)
		}
		for j := 0; j <= m; j++ {
			k := i*w + j
			if i == 0 && j == 0 {
				curM[0], curH[0], curV[0] = 0, negInf, negInf
				tbM[k], tbH[k], tbV[k] = stNone, stNone, stNone
				continue
			}
			sym := s.Entry(seq, j-1)

			curM[j] = negInf
			tbM[k] = stNone
			if i > 0 && j > 0 {
				b, st := best3(prevM[j-1], prevH[j-1], prevV[j-1])
				if b > negInf {
					curM[j] = b + s.Score(col, sym)
					tbM[k] = st
				}
			}

			curH[j] = negInf
			tbH[k] = stNone
			if i > 0 {
				open := s.GapOpenHorizontal(col, sym)
				ext := s.GapExtendHorizontal(col, sym)
				curH[j], tbH[k] = pick(
					add(prevM[j], open), stM,
					add(prevH[j], ext), stH,
					add(prevV[j], open), stV,
				)
			}

			curV[j] = negInf
			tbV[k] = stNone
			if j > 0 {
				open := s.GapOpenVertical(col, sym)
				ext := s.GapExtendVertical(col, sym)
				curV[j], tbV[k] = pick(
					add(curM[j-1], open), stM,
					add(curH[j-1], open), stH,
					add(curV[j-1], ext), stV,
				)
			}
		}
		prevM, curM = curM, prevM
		prevH, curH = curH, prevH
		prevV, curV = curV, prevV
	}

	total, st := best3(prevM[m], prevH[m], prevV[m])
	ops := make([]Op, 0, n+m)
	for i, j := n, m; i > 0 || j > 0; {
		k := i*w + j
		switch st {
		case stM:
			ops = append(ops, Match)
			st = tbM[k]
			i, j = i-1, j-1
		case stH:
			ops = append(ops, Delete)
			st = tbH[k]
			i--
		case stV:
			ops = append(ops, Insert)
			st = tbV[k]
			j--
		default:
			panic("align: broken traceback")
		}
	}
	for a, b := 0, len(ops)-1; a < b; a, b = a+1, b-1 {
		ops[a], ops[b] = ops[b], ops[a]
	}
	return Result{Score: total, Ops: ops}
}

func add(v, d int) int {
	if v == negInf {
		return negInf
	}
	return v + d
}

// best3 prefers M, then H, then V on ties.
func best3(m, h, v int) (int, state) {
	return pick(m, stM, h, stH, v, stV)
}

func pick(a int, sa state, b int, sb state, c int, sc state) (int, state) {
	best, st := a, sa
	if b > best {
		best, st = b, sb
	}
	if c > best {
		best, st = c, sc
	}
	if best == negInf {
		return negInf, stNone
	}
	return best, st
}

var samOp = map[Op]sam.CigarOpType{
	Match:  sam.CigarMatch,
	Delete: sam.CigarDeletion,
	Insert: sam.CigarInsertion,
}

// SAM returns Ops as a SAM CIGAR with the profile as the reference.
func (r Result) SAM() sam.Cigar {
	var c sam.Cigar
	for i := 0; i < len(r.Ops); {
		j := i
		for j < len(r.Ops) && r.Ops[j] == r.Ops[i] {
			j++
		}
		c = append(c, sam.NewCigarOp(samOp[r.Ops[i]], j-i))
		i = j
	}
	return c
}

// Cigar is the SAM CIGAR string of r, e.g. "3M1D2M", or "" for an empty
// alignment.
func (r Result) Cigar() string {
	if len(r.Ops) == 0 {
		return ""
	}
	return r.SAM().String()
}

// Symbols decodes ordinals back to characters.
type Symbols interface {
	Symbol(ord int) byte
}

// Render returns the gapped profile-consensus row and plain row.
func (r Result) Render(a Symbols, prof, seq score.Sequence) (top, bottom string) {
	var t, b strings.Builder
	i, j := 0, 0
	for _, op := range r.Ops {
		switch op {
		case Match:
			t.WriteByte(a.Symbol(prof.Ord(i)))
			b.WriteByte(a.Symbol(seq.Ord(j)))
			i++
			j++
		case Delete:
			t.WriteByte(a.Symbol(prof.Ord(i)))
			b.WriteByte('-')
			i++
		case Insert:
			t.WriteByte('-')
			b.WriteByte(a.Symbol(seq.Ord(j)))
			j++
		}
	}
	return t.String(), b.String()
}
