package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"profseq/pkg/api"
)

func TestWriteAlignmentText(t *testing.T) {
	var buf bytes.Buffer
	a := api.AlignmentV1{SequenceID: "q1", SourceFile: "in.fa", Length: 4, Score: -2000, Cigar: "2M1D2M", Matches: 4, Deletions: 1}
	require.NoError(t, WriteAlignmentText(&buf, a))
	assert.Equal(t, "q1\tin.fa\t4\t-2000\t2M1D2M\t4\t1\t0\n", buf.String())
	assert.Equal(t, len(strings.Split(AlignmentHeader, "\t")), len(strings.Split(strings.TrimSpace(buf.String()), "\t")))

	buf.Reset()
	a.Profile, a.Sequence = "ACGT", "AC-T"
	require.NoError(t, WriteAlignmentText(&buf, a))
	assert.True(t, strings.HasSuffix(buf.String(), "  ACGT\n  AC-T\n"))
}

func TestWriteConsensusText(t *testing.T) {
	c := api.ConsensusV1{
		Alphabet: "acgt", Symbols: "ACGT", Unity: 1000,
		Rows: []api.ConsensusRowV1{{Column: 1, Consensus: "AC", Penalties: []int{0, 0, -1000, -1000}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteConsensusText(&buf, c, true))
	assert.Equal(t, "# alphabet=acgt unity=1000\ncolumn\tconsensus\tA\tC\tG\tT\n1\tAC\t0\t0\t-1000\t-1000\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteConsensusText(&buf, c, false))
	assert.Equal(t, "1\tAC\t0\t0\t-1000\t-1000\n", buf.String())
}

func TestWriteCostText(t *testing.T) {
	sc := -1000
	var buf bytes.Buffer
	require.NoError(t, WriteCostText(&buf, api.CostV1{Column: 1, Symbol: "G", Score: &sc, GapOpenHorizontal: -2000, GapExtendHorizontal: -1000, GapOpenVertical: -2000, GapExtendVertical: -1000}))
	assert.Contains(t, buf.String(), "symbol\tG\nscore\t-1000\n")

	buf.Reset()
	require.NoError(t, WriteCostText(&buf, api.CostV1{Column: 1, BeforeStart: true}))
	assert.Contains(t, buf.String(), "symbol\t(before-start)\n")
	assert.NotContains(t, buf.String(), "score\t")
}

func TestEncodeJSONOmitsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, api.AlignmentV1{SequenceID: "q", Cigar: "1M", Matches: 1, Length: 1}))
	s := buf.String()
	assert.Contains(t, s, `"sequence_id": "q"`)
	assert.NotContains(t, s, "profile_row")
	assert.NotContains(t, s, "source_file")
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	in := api.ConsensusV1{Alphabet: "dna", Symbols: "ACGT-", Unity: 1000, Rows: []api.ConsensusRowV1{
		{Column: 1, Consensus: "A", Counts: []int{2, 0, 0, 0, 0}, Penalties: []int{0, -1000, -1000, -1000, -1000}},
	}}
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, in))
	assert.Contains(t, buf.String(), "penalties: [0, -1000, -1000, -1000, -1000]")

	var out api.ConsensusV1
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}
