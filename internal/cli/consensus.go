// internal/cli/consensus.go
package cli

import (
	"context"
	"fmt"
	"os"

	ucli "github.com/urfave/cli/v3"

	"profseq-core/profile"
	"profseq-core/score"
	"profseq/internal/writers"
	"profseq/pkg/api"
)

var countsOutFlag = &ucli.StringFlag{
	Name:  "counts-out",
	Usage: "also write the profile's per-column counts as TSV to this file",
}

func consensusCommand(s *settings) *ucli.Command {
	return &ucli.Command{
		Name:         "consensus",
		Usage:        "print the consensus penalty table of a profile",
		Flags:        []ucli.Flag{profileFlag, profileFormatFlag, countsOutFlag},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			path, err := s.requireProfile(cmd)
			if err != nil {
				return err
			}
			p, err := LoadProfile(ctx, path, cmd.String(profileFormatFlag.Name), s.alphabet)
			if err != nil {
				return inputError(err)
			}
			sch := score.NewProfileSeq(p, score.WithUnity(s.cfg.Unity))
			s.log.Debug("profile loaded", "file", path, "columns", p.Len(), "consensus", p.Consensus())

			if out := cmd.String(countsOutFlag.Name); out != "" {
				if err := writeCounts(out, p); err != nil {
					return writeError(err)
				}
				s.log.Info("counts written", "file", out, "columns", p.Len())
			}

			tbl := sch.Table()
			doc := api.ConsensusV1{
				Alphabet: s.alphabet.Name(),
				Symbols:  string(s.alphabet.Symbols()),
				Unity:    sch.Unity(),
				Sequence: p.Consensus(),
				Rows:     make([]api.ConsensusRowV1, 0, tbl.Columns()),
			}
			for c := 0; c < tbl.Columns(); c++ {
				var cons []byte
				for o := 0; o < tbl.AlphabetSize(); o++ {
					if tbl.InConsensus(c, o) {
						cons = append(cons, s.alphabet.Symbol(o))
					}
				}
				col := p.Column(c)
				doc.Rows = append(doc.Rows, api.ConsensusRowV1{
					Column:    c + 1,
					Consensus: string(cons),
					Depth:     col.Total(),
					Counts:    append([]int(nil), col.Counts...),
					Penalties: tbl.Row(c),
				})
			}
			return writeError(writers.WriteConsensus(s.cfg.Format, s.stdout, doc, s.header))
		},
	}
}

func writeCounts(path string, p *profile.Profile) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating counts file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing counts file %s: %w", path, cerr)
		}
	}()
	if err := profile.WriteTSV(f, p); err != nil {
		return fmt.Errorf("writing counts file %s: %w", path, err)
	}
	return nil
}
