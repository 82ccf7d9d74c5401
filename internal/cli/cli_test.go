package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profseq-core/align"
	"profseq-core/alphabet"
	"profseq-core/consensus"
	"profseq/internal/pipeline"
)

func TestProfileFormat(t *testing.T) {
	tests := []struct {
		path, format, want string
		wantErr            bool
	}{
		{"p.tsv", ProfileAuto, ProfileTSV, false},
		{"P.COUNTS.gz", "", ProfileTSV, false},
		{"p.fa", ProfileAuto, ProfileFASTA, false},
		{"p.tsv", ProfileFASTA, ProfileFASTA, false},
		{"-", ProfileAuto, ProfileFASTA, false},
		{"p.fa", "csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			got, err := profileFormat(tt.path, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, ExitOK, Code(nil))
	assert.Equal(t, ExitFailure, Code(errors.New("boom")))
	assert.Equal(t, ExitUsage, Code(usageErrorf("bad %s", "flag")))
	assert.Equal(t, ExitWrite, Code(fmt.Errorf("wrapped: %w", writeError(errors.New("disk full")))))
	assert.NoError(t, inputError(nil))
	assert.NoError(t, writeError(nil))
}

func TestLoadProfileTSVAndFASTAAgree(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "p.fa")
	tsv := filepath.Join(dir, "p.tsv")
	require.NoError(t, os.WriteFile(fa, []byte(">a\nAC-\n>b\nAG-\n"), 0o644))
	require.NoError(t, os.WriteFile(tsv, []byte("1\t2\t0\t0\t0\t0\n2\t0\t1\t1\t0\t0\n3\t0\t0\t0\t0\t2\n"), 0o644))

	pf, err := LoadProfile(context.Background(), fa, ProfileAuto, alphabet.DNA)
	require.NoError(t, err)
	pt, err := LoadProfile(context.Background(), tsv, ProfileAuto, alphabet.DNA)
	require.NoError(t, err)
	assert.Equal(t, pf.Counts(), pt.Counts())
}

func TestAlignmentV1Counts(t *testing.T) {
	// Column 0 accepts A, column 1 accepts C, column 2 accepts G.
	tbl := consensus.Build([][]int{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
	}, 5, 1000)
	seq, err := alphabet.DNA.Encode("q", []byte("ATTG"))
	require.NoError(t, err)

	v := alignmentV1(pipeline.Aligned{
		ID:  "q",
		Seq: seq,
		Result: align.Result{
			Score: -3000,
			Ops:   []align.Op{align.Match, align.Match, align.Insert, align.Delete, align.Insert},
		},
	}, tbl)
	assert.Equal(t, 1, v.Matches, "T against column 1 is a mismatch")
	assert.Equal(t, 1, v.Deletions)
	assert.Equal(t, 2, v.Insertions)
	assert.Equal(t, "2M1I1D1I", v.Cigar)
	assert.Equal(t, 4, v.Length)
}

func TestNewCommandHelp(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := NewCommand(&out, &errBuf)
	require.NoError(t, cmd.Run(context.Background(), []string{"profseq", "--help"}))
	for _, sub := range []string{"consensus", "align", "cost", "config"} {
		assert.Contains(t, out.String(), sub)
	}
}
