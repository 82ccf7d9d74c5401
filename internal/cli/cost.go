// internal/cli/cost.go
package cli

import (
	"context"

	ucli "github.com/urfave/cli/v3"

	"profseq-core/score"
	"profseq/internal/writers"
	"profseq/pkg/api"
)

var (
	columnFlag = &ucli.IntFlag{
		Name:    "column",
		Aliases: []string{"c"},
		Usage:   "1-based profile column",
	}
	symbolFlag = &ucli.StringFlag{
		Name:    "symbol",
		Aliases: []string{"s"},
		Usage:   "plain-side symbol",
	}
	beforeStartFlag = &ucli.BoolFlag{
		Name:  "before-start",
		Usage: "query with the plain side before the start of the sequence",
	}
)

func costCommand(s *settings) *ucli.Command {
	return &ucli.Command{
		Name:         "cost",
		Usage:        "print the substitution score and gap costs of one alignment cell",
		Flags:        []ucli.Flag{profileFlag, profileFormatFlag, columnFlag, symbolFlag, beforeStartFlag},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			path, err := s.requireProfile(cmd)
			if err != nil {
				return err
			}
			before := cmd.Bool(beforeStartFlag.Name)
			sym := cmd.String(symbolFlag.Name)
			if !before && len(sym) != 1 {
				return usageErrorf("--symbol must be a single character (or use --before-start)")
			}

			p, err := LoadProfile(ctx, path, cmd.String(profileFormatFlag.Name), s.alphabet)
			if err != nil {
				return inputError(err)
			}
			col := cmd.Int(columnFlag.Name)
			if col < 1 || col > p.Len() {
				return usageErrorf("--column %d out of range [1,%d]", col, p.Len())
			}

			sch := score.NewProfileSeq(p, score.WithUnity(s.cfg.Unity))
			plain, err := s.alphabet.Encode("query", []byte(sym))
			if err != nil {
				return usageErrorf("%v", err)
			}
			profEntry := sch.Entry(p, col-1)
			plainEntry := sch.Entry(plain, 0)
			if before {
				plainEntry = sch.Entry(plain, -1)
			}

			out := api.CostV1{
				Column:              col,
				Symbol:              plain.String(),
				BeforeStart:         before,
				GapOpenHorizontal:   sch.GapOpenHorizontal(profEntry, plainEntry),
				GapExtendHorizontal: sch.GapExtendHorizontal(profEntry, plainEntry),
				GapOpenVertical:     sch.GapOpenVertical(profEntry, plainEntry),
				GapExtendVertical:   sch.GapExtendVertical(profEntry, plainEntry),
			}
			if !before {
				v := sch.Score(profEntry, plainEntry)
				out.Score = &v
			}
			return writeError(writers.WriteCost(s.cfg.Format, s.stdout, out))
		},
	}
}
