package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profseq/pkg/api"
)

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text", "yaml"}, Formats())
	for _, f := range Formats() {
		_, ok := CostWriters[f]
		assert.True(t, ok, f)
	}
}

func TestUnknownFormats(t *testing.T) {
	var b bytes.Buffer
	err := WriteConsensus("nope", &b, api.ConsensusV1{}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown consensus format")

	err = WriteCost("wat", &b, api.CostV1{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cost format")

	in, done := StartAlignmentWriter(&b, "???", false, 1)
	in <- api.AlignmentV1{SequenceID: "q"}
	close(in)
	err = <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown alignment format")
}

func TestAlignmentWriterText(t *testing.T) {
	var b bytes.Buffer
	in, done := StartAlignmentWriter(&b, "text", true, 0)
	in <- api.AlignmentV1{SequenceID: "a", Cigar: "1M"}
	in <- api.AlignmentV1{SequenceID: "b", Cigar: "1D"}
	close(in)
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "sequence_id\t"))
	assert.True(t, strings.HasPrefix(lines[2], "b\t"))
}

func TestAlignmentWriterJSON(t *testing.T) {
	var b bytes.Buffer
	in, done := StartAlignmentWriter(&b, "json", false, 2)
	for i := 0; i < 5; i++ {
		in <- api.AlignmentV1{SequenceID: fmt.Sprint("s", i)}
	}
	close(in)
	require.NoError(t, <-done)

	var got []api.AlignmentV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Len(t, got, 5)
	assert.Equal(t, "s4", got[4].SequenceID)
}

func TestAlignmentWriterEmptyJSONIsArray(t *testing.T) {
	var b bytes.Buffer
	in, done := StartAlignmentWriter(&b, "json", false, 1)
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "[]\n", b.String())
}

func TestAlignmentWriterJSONL(t *testing.T) {
	var b bytes.Buffer
	in, done := StartAlignmentWriter(&b, "jsonl", true, 1)
	in <- api.AlignmentV1{SequenceID: "a", Cigar: "1M"}
	in <- api.AlignmentV1{SequenceID: "b", Cigar: "1D"}
	close(in)
	require.NoError(t, <-done)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"sequence_id":"a"`)
	assert.Contains(t, lines[1], `"cigar":"1D"`)
}

func TestWriteConsensusJSONLOneRowPerLine(t *testing.T) {
	var b bytes.Buffer
	c := api.ConsensusV1{Rows: []api.ConsensusRowV1{{Column: 1}, {Column: 2}}}
	require.NoError(t, WriteConsensus("jsonl", &b, c, true))
	assert.Equal(t, 2, strings.Count(b.String(), "\n"))
}

func TestWriteConsensusYAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteConsensus("yaml", &b, api.ConsensusV1{Alphabet: "dna", Unity: 1000}, false))
	assert.Contains(t, b.String(), "alphabet: dna")
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
