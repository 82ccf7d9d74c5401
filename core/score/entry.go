// core/score/entry.go
package score

// Sequence is anything an Entry can address: a profile (one position per
// column) or a plain sequence encoded as alphabet ordinals.
type Sequence interface {
	Len() int
	Ord(i int) int
}

// Entry pairs a sequence with a position in it. A before-start entry is the
// virtual predecessor of the first symbol; aligners use it on the plain side
// to ask for the leading-gap cost.
type Entry struct {
	seq    Sequence
	pos    int
	before bool
}

// At returns the entry for pos in seq. Any negative pos is the before-start
// position.
func At(seq Sequence, pos int) Entry {
	if pos < 0 {
		return BeforeStart(seq)
	}
	return Entry{seq: seq, pos: pos}
}

// BeforeStart returns the virtual position preceding seq's first symbol.
func BeforeStart(seq Sequence) Entry {
	return Entry{seq: seq, pos: -1, before: true}
}

// Position is the index into the sequence, or -1 before the start.
func (e Entry) Position() int { return e.pos }

func (e Entry) IsBeforeStart() bool { return e.before }

func (e Entry) Sequence() Sequence { return e.seq }

// Ord returns the symbol ordinal at the entry. It panics on a before-start
// entry, which has no symbol.
func (e Entry) Ord() int {
	if e.before {
		panic("score: no symbol at the before-start position")
	}
	return e.seq.Ord(e.pos)
}
