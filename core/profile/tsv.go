// core/profile/tsv.go
package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"profseq-core/alphabet"
)

// ReadTSV reads a counts table: one line per column holding one
// whitespace-separated count per alphabet symbol, in ordinal order.
// Blank lines and '#' comments are skipped. An optional leading
// column index field is accepted when a line has Size()+1 fields.
func ReadTSV(r io.Reader, name string, a *alphabet.Alphabet) (*Profile, error) {
	p := New(a)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		switch len(f) {
		case a.Size():
		case a.Size() + 1:
			f = f[1:]
		default:
			return nil, fmt.Errorf("%s:%d bad field count %d (alphabet %s has %d symbols)", name, ln, len(f), a.Name(), a.Size())
		}
		counts := make([]int, len(f))
		for i, s := range f {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad count %q: %w", name, ln, s, err)
			}
			counts[i] = v
		}
		if err := p.AddColumn(counts); err != nil {
			return nil, fmt.Errorf("%s:%d %w", name, ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// WriteTSV writes p in the format ReadTSV accepts, with a header comment
// naming the symbols and a leading 1-based column index.
func WriteTSV(w io.Writer, p *Profile) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("#col")
	for _, s := range p.Alphabet.Symbols() {
		_, _ = bw.WriteString("\t" + string(s))
	}
	_ = bw.WriteByte('\n')
	for i, c := range p.Columns {
		_, _ = bw.WriteString(strconv.Itoa(i + 1))
		for _, v := range c.Counts {
			_, _ = bw.WriteString("\t" + strconv.Itoa(v))
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}
