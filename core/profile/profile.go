// core/profile/profile.go
package profile

import (
	"errors"
	"fmt"

	"profseq-core/alphabet"
)

// Column holds per-symbol occurrence counts at one alignment position,
// indexed by alphabet ordinal.
type Column struct {
	Counts []int
}

// Total is the sum of all counts in the column.
func (c Column) Total() int {
	n := 0
	for _, v := range c.Counts {
		n += v
	}
	return n
}

// Profile is an ordered sequence of columns over a fixed alphabet.
type Profile struct {
	Alphabet *alphabet.Alphabet
	Columns  []Column
}

// New returns an empty profile over a.
func New(a *alphabet.Alphabet) *Profile {
	return &Profile{Alphabet: a}
}

// AddColumn appends a column. counts is copied.
func (p *Profile) AddColumn(counts []int) error {
	if len(counts) != p.Alphabet.Size() {
		return fmt.Errorf("column %d: got %d counts, alphabet %s has %d symbols",
			len(p.Columns)+1, len(counts), p.Alphabet.Name(), p.Alphabet.Size())
	}
	for i, v := range counts {
		if v < 0 {
			return fmt.Errorf("column %d: negative count %d for %q", len(p.Columns)+1, v, p.Alphabet.Symbol(i))
		}
	}
	p.Columns = append(p.Columns, Column{Counts: append([]int(nil), counts...)})
	return nil
}

// Len is the number of columns.
func (p *Profile) Len() int { return len(p.Columns) }

func (p *Profile) Column(i int) Column { return p.Columns[i] }

// Ord returns the ordinal of the first most frequent symbol in column i.
// An all-zero column reports ordinal 0.
func (p *Profile) Ord(i int) int {
	best, max := 0, -1
	for o, v := range p.Columns[i].Counts {
		if v > max {
			best, max = o, v
		}
	}
	return best
}

// Counts returns the raw counts as a column-major table.
func (p *Profile) Counts() [][]int {
	out := make([][]int, len(p.Columns))
	for i, c := range p.Columns {
		out[i] = c.Counts
	}
	return out
}

// Consensus returns the most frequent symbol of every column.
func (p *Profile) Consensus() string {
	b := make([]byte, p.Len())
	for i := range p.Columns {
		b[i] = p.Alphabet.Symbol(p.Ord(i))
	}
	return string(b)
}

// FromRows counts symbols per column over equal-length aligned rows.
// Lowercase residues count as their uppercase symbol; '.' counts as gap
// when the alphabet ends with '-'.
func FromRows(a *alphabet.Alphabet, ids []string, rows [][]byte) (*Profile, error) {
	if len(rows) == 0 {
		return nil, errors.New("profile: no aligned rows")
	}
	name := func(i int) string {
		if i < len(ids) && ids[i] != "" {
			return ids[i]
		}
		return fmt.Sprintf("row %d", i+1)
	}
	width := len(rows[0])
	size := a.Size()
	flat := make([]int, width*size)
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("profile: %s has length %d, but other rows have length %d", name(r), len(row), width)
		}
		for j, c := range row {
			o, ok := a.Ord(c)
			if !ok {
				return nil, fmt.Errorf("profile: %s: invalid symbol %q at %d for alphabet %s", name(r), c, j+1, a.Name())
			}
			flat[j*size+o]++
		}
	}
	p := &Profile{Alphabet: a, Columns: make([]Column, width)}
	for j := range p.Columns {
		p.Columns[j] = Column{Counts: flat[j*size : (j+1)*size : (j+1)*size]}
	}
	return p, nil
}
