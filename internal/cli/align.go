// internal/cli/align.go
package cli

import (
	"context"
	"errors"
	"time"

	ucli "github.com/urfave/cli/v3"

	"profseq-core/align"
	"profseq-core/consensus"
	"profseq-core/score"
	"profseq/internal/pipeline"
	"profseq/internal/writers"
	"profseq/pkg/api"
)

var (
	sequencesFlag = &ucli.StringSliceFlag{
		Name:    "sequences",
		Aliases: []string{"i"},
		Usage:   "FASTA file(s) of plain sequences (repeatable; gzip and '-' accepted)",
	}
	threadsFlag = &ucli.IntFlag{
		Name:    "threads",
		Aliases: []string{"t"},
		Usage:   "worker goroutines (0 = all CPUs)",
	}
	sortFlag = &ucli.BoolFlag{
		Name:  "sort",
		Usage: "emit alignments in input order",
	}
	renderFlag = &ucli.BoolFlag{
		Name:  "render",
		Usage: "include the gapped profile and sequence rows",
	}
)

func alignCommand(s *settings) *ucli.Command {
	return &ucli.Command{
		Name:         "align",
		Usage:        "globally align plain sequences against a profile",
		Flags:        []ucli.Flag{profileFlag, profileFormatFlag, sequencesFlag, threadsFlag, sortFlag, renderFlag},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			path, err := s.requireProfile(cmd)
			if err != nil {
				return err
			}
			seqFiles := cmd.StringSlice(sequencesFlag.Name)
			if len(seqFiles) == 0 {
				return usageErrorf("--sequences is required")
			}
			threads := s.cfg.Threads
			if cmd.IsSet(threadsFlag.Name) {
				threads = cmd.Int(threadsFlag.Name)
			}
			if threads < 0 {
				return usageErrorf("--threads must be >= 0")
			}
			sorted := s.cfg.Sort || cmd.Bool(sortFlag.Name)

			p, err := LoadProfile(ctx, path, cmd.String(profileFormatFlag.Name), s.alphabet)
			if err != nil {
				return inputError(err)
			}
			sch := score.NewProfileSeq(p, score.WithUnity(s.cfg.Unity))
			tbl := sch.Table()
			s.log.Debug("profile loaded", "file", path, "columns", p.Len())

			out, werrCh := writers.StartAlignmentWriter(s.stdout, s.cfg.Format, s.header, 0)
			start := time.Now()
			n := 0
			perr := pipeline.ForEachAlignment(ctx, pipeline.Config{
				Threads: threads,
				Sort:    sorted,
				Render:  cmd.Bool(renderFlag.Name),
				Logger:  s.log,
			}, seqFiles, p, sch, func(a pipeline.Aligned) error {
				out <- alignmentV1(a, tbl)
				n++
				return nil
			})
			close(out)
			werr := <-werrCh

			if perr != nil {
				if errors.Is(perr, context.Canceled) {
					return perr
				}
				return inputError(perr)
			}
			if werr != nil {
				return writeError(werr)
			}
			s.log.Info("alignment finished",
				"sequences", n, "columns", p.Len(), "elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

// alignmentV1 summarizes a finished alignment. A match counts only when the
// plain symbol is in the column's consensus set.
func alignmentV1(a pipeline.Aligned, tbl consensus.Table) api.AlignmentV1 {
	v := api.AlignmentV1{
		SequenceID: a.ID,
		SourceFile: a.SourceFile,
		Length:     a.Seq.Len(),
		Score:      a.Result.Score,
		Cigar:      a.Result.Cigar(),
		Profile:    a.ProfileRow,
		Sequence:   a.SeqRow,
	}
	col, pos := 0, 0
	for _, op := range a.Result.Ops {
		switch op {
		case align.Match:
			if tbl.InConsensus(col, a.Seq.Ord(pos)) {
				v.Matches++
			}
			col++
			pos++
		case align.Delete:
			v.Deletions++
			col++
		case align.Insert:
			v.Insertions++
			pos++
		}
	}
	return v
}
