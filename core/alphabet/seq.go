// core/alphabet/seq.go
package alphabet

import "fmt"

// Seq is a sequence encoded as ordinals of an alphabet.
type Seq struct {
	ID   string
	ords []uint8
	a    *Alphabet
}

// Encode maps raw symbols onto a's ordinals. Whitespace is not skipped.
func (a *Alphabet) Encode(id string, raw []byte) (Seq, error) {
	ords := make([]uint8, len(raw))
	for i, c := range raw {
		o, ok := a.Ord(c)
		if !ok {
			return Seq{}, fmt.Errorf("%s: invalid symbol %q at %d for alphabet %s", id, c, i+1, a.name)
		}
		ords[i] = uint8(o)
	}
	return Seq{ID: id, ords: ords, a: a}, nil
}

// Len is the number of symbols in s.
func (s Seq) Len() int { return len(s.ords) }

// Ord returns the ordinal at i.
func (s Seq) Ord(i int) int { return int(s.ords[i]) }

func (s Seq) Alphabet() *Alphabet { return s.a }

// String decodes s back to symbols (uppercase).
func (s Seq) String() string {
	b := make([]byte, len(s.ords))
	for i, o := range s.ords {
		b[i] = s.a.symbols[o]
	}
	return string(b)
}
