// core/alphabet/alphabet.go
package alphabet

import (
	"fmt"
	"strings"
)

// GapSymbol is the conventional gap character. When an alphabet ends with it,
// the A2M insertion gap '.' is accepted as a synonym.
const GapSymbol = '-'

// Alphabet is an ordered set of symbols. The last symbol is reserved as the
// gap character of the alphabet.
type Alphabet struct {
	name    string
	symbols []byte
	ord     [256]int16 // -1 = not in alphabet
}

// Built-in alphabets. Every one ends with '-'.
var (
	DNA     = MustNew("dna", "ACGT-")
	DNA5    = MustNew("dna5", "ACGTN-")
	RNA     = MustNew("rna", "ACGU-")
	Protein = MustNew("protein", "ACDEFGHIKLMNPQRSTVWY-")
)

var builtin = map[string]*Alphabet{
	"dna":     DNA,
	"dna5":    DNA5,
	"rna":     RNA,
	"protein": Protein,
}

// New builds an alphabet from symbols. Lookups are case-insensitive, so two
// symbols differing only by case are duplicates. An empty symbol string is
// accepted and yields a zero-size alphabet.
func New(name, symbols string) (*Alphabet, error) {
	a := &Alphabet{name: name, symbols: make([]byte, 0, len(symbols))}
	for i := range a.ord {
		a.ord[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := upper(symbols[i])
		if a.ord[c] >= 0 {
			return nil, fmt.Errorf("alphabet %q: duplicate symbol %q at %d", name, c, i+1)
		}
		a.ord[c] = int16(len(a.symbols))
		if lc := lower(c); lc != c {
			a.ord[lc] = a.ord[c]
		}
		a.symbols = append(a.symbols, c)
	}
	if n := len(a.symbols); n > 0 && a.symbols[n-1] == GapSymbol && a.ord['.'] < 0 {
		a.ord['.'] = int16(n - 1)
	}
	return a, nil
}

// MustNew is New that panics on error. Meant for package-level alphabets.
func MustNew(name, symbols string) *Alphabet {
	a, err := New(name, symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Lookup returns a built-in alphabet by name (dna, dna5, rna, protein).
func Lookup(name string) (*Alphabet, error) {
	if a, ok := builtin[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown alphabet %q (want one of: dna, dna5, rna, protein)", name)
}

func (a *Alphabet) Name() string { return a.name }

// Size is the number of symbols, gap included.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Gap is the ordinal of the gap symbol, Size()-1. It is -1 for an empty alphabet.
func (a *Alphabet) Gap() int { return len(a.symbols) - 1 }

func (a *Alphabet) Symbol(ord int) byte { return a.symbols[ord] }

// Symbols returns a copy of the symbols in ordinal order.
func (a *Alphabet) Symbols() []byte { return append([]byte(nil), a.symbols...) }

// Ord returns the ordinal of c.
func (a *Alphabet) Ord(c byte) (int, bool) {
	o := a.ord[c]
	return int(o), o >= 0
}

func (a *Alphabet) String() string { return a.name + ":" + string(a.symbols) }

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
