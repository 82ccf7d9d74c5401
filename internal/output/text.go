// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"profseq/pkg/api"
)

// AlignmentHeader is the TSV header of text alignment output.
const AlignmentHeader = "sequence_id\tsource_file\tlength\tscore\tcigar\tmatches\tdeletions\tinsertions"

// WriteAlignmentText writes one TSV line for a; when rendered rows are
// present they follow as two indented lines.
func WriteAlignmentText(w io.Writer, a api.AlignmentV1) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d\t%d\t%d\n",
		a.SequenceID, a.SourceFile, a.Length, a.Score, a.Cigar,
		a.Matches, a.Deletions, a.Insertions)
	if err != nil {
		return err
	}
	if a.Profile != "" || a.Sequence != "" {
		_, err = fmt.Fprintf(w, "  %s\n  %s\n", a.Profile, a.Sequence)
	}
	return err
}

// WriteConsensusText writes the penalty table as TSV, one line per column.
func WriteConsensusText(w io.Writer, c api.ConsensusV1, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		_, _ = fmt.Fprintf(bw, "# alphabet=%s unity=%d\n", c.Alphabet, c.Unity)
		_, _ = bw.WriteString("column\tconsensus")
		for _, s := range c.Symbols {
			_, _ = bw.WriteString("\t" + string(s))
		}
		_ = bw.WriteByte('\n')
	}
	for _, r := range c.Rows {
		_, _ = bw.WriteString(strconv.Itoa(r.Column) + "\t" + r.Consensus)
		for _, p := range r.Penalties {
			_, _ = bw.WriteString("\t" + strconv.Itoa(p))
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteCostText writes one "name<TAB>value" line per cost.
func WriteCostText(w io.Writer, c api.CostV1) error {
	var b strings.Builder
	fmt.Fprintf(&b, "column\t%d\n", c.Column)
	if c.BeforeStart {
		b.WriteString("symbol\t(before-start)\n")
	} else {
		fmt.Fprintf(&b, "symbol\t%s\n", c.Symbol)
	}
	if c.Score != nil {
		fmt.Fprintf(&b, "score\t%d\n", *c.Score)
	}
	fmt.Fprintf(&b, "gap_open_horizontal\t%d\n", c.GapOpenHorizontal)
	fmt.Fprintf(&b, "gap_extend_horizontal\t%d\n", c.GapExtendHorizontal)
	fmt.Fprintf(&b, "gap_open_vertical\t%d\n", c.GapOpenVertical)
	fmt.Fprintf(&b, "gap_extend_vertical\t%d\n", c.GapExtendVertical)
	_, err := io.WriteString(w, b.String())
	return err
}
