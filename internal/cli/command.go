// internal/cli/command.go
package cli

import (
	"context"
	"io"
	"log/slog"

	ucli "github.com/urfave/cli/v3"

	"profseq-core/alphabet"
	"profseq/internal/config"
	"profseq/internal/logging"
	"profseq/internal/version"
)

// settings are resolved once in the root Before hook and read by every
// subcommand.
type settings struct {
	cfg      *config.Config
	alphabet *alphabet.Alphabet
	log      *slog.Logger
	header   bool
	stdout   io.Writer
	stderr   io.Writer
}

var (
	configFlag = &ucli.StringFlag{
		Name:  "config",
		Usage: "YAML config file (flags override its values)",
	}
	logLevelFlag = &ucli.StringFlag{
		Name:  "log-level",
		Usage: "log level: debug | info | warn | error",
		Value: "info",
	}
	colorFlag = &ucli.BoolFlag{
		Name:  "color",
		Usage: "colorize warnings and errors on stderr",
	}
	formatFlag = &ucli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Usage:   "output format: text | json | jsonl | yaml",
		Value:   config.FormatText,
	}
	alphabetFlag = &ucli.StringFlag{
		Name:  "alphabet",
		Usage: "alphabet: dna | dna5 | rna | protein (last symbol is the gap)",
		Value: "dna",
	}
	unityFlag = &ucli.IntFlag{
		Name:  "unity",
		Usage: "base cost unit of gaps and mismatches",
		Value: 1000,
	}
	noHeaderFlag = &ucli.BoolFlag{
		Name:  "no-header",
		Usage: "suppress header lines in text output",
	}
	profileFlag = &ucli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "profile: counts TSV or aligned FASTA (gzip and '-' accepted)",
	}
	profileFormatFlag = &ucli.StringFlag{
		Name:  "profile-format",
		Usage: "profile input format: auto | tsv | fasta",
		Value: ProfileAuto,
	}
)

// NewCommand builds the profseq command tree writing to stdout and stderr.
func NewCommand(stdout, stderr io.Writer) *ucli.Command {
	s := &settings{stdout: stdout, stderr: stderr}
	return &ucli.Command{
		Name:            "profseq",
		Usage:           "score and align sequences against a consensus profile",
		Version:         version.Version,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []ucli.Flag{
			configFlag,
			logLevelFlag,
			colorFlag,
			formatFlag,
			alphabetFlag,
			unityFlag,
			noHeaderFlag,
		},
		Commands: []*ucli.Command{
			consensusCommand(s),
			alignCommand(s),
			costCommand(s),
			configCommand(s),
		},
		Before: func(ctx context.Context, cmd *ucli.Command) (context.Context, error) {
			return ctx, s.resolve(cmd)
		},
		Action: func(_ context.Context, cmd *ucli.Command) error {
			if cmd.Args().Len() > 0 {
				return usageErrorf("unknown command %q", cmd.Args().First())
			}
			return ucli.ShowAppHelp(cmd)
		},
		OnUsageError:   onUsageError,
		ExitErrHandler: func(context.Context, *ucli.Command, error) {},
	}
}

func onUsageError(_ context.Context, _ *ucli.Command, err error, _ bool) error {
	return &CodedError{Code: ExitUsage, Err: err}
}

// resolve loads the config file and applies flag overrides.
func (s *settings) resolve(cmd *ucli.Command) error {
	cfg, err := config.Load(cmd.String(configFlag.Name))
	if err != nil {
		return inputError(err)
	}
	if cmd.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = cmd.String(logLevelFlag.Name)
	}
	if cmd.IsSet(formatFlag.Name) {
		cfg.Format = cmd.String(formatFlag.Name)
	}
	if cmd.IsSet(alphabetFlag.Name) {
		cfg.Alphabet = cmd.String(alphabetFlag.Name)
	}
	if cmd.IsSet(unityFlag.Name) {
		cfg.Unity = cmd.Int(unityFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return usageErrorf("%v", err)
	}
	a, err := alphabet.Lookup(cfg.Alphabet)
	if err != nil {
		return usageErrorf("%v", err)
	}

	s.cfg = cfg
	s.alphabet = a
	s.header = !cmd.Bool(noHeaderFlag.Name)
	s.log = logging.NewCLILogger(s.stderr, cfg.LogLevel, cmd.Bool(colorFlag.Name))
	s.log.Debug("settings resolved",
		"alphabet", a.Name(), "unity", cfg.Unity, "format", cfg.Format, "threads", cfg.Threads)
	return nil
}

func (s *settings) requireProfile(cmd *ucli.Command) (string, error) {
	path := cmd.String(profileFlag.Name)
	if path == "" {
		return "", usageErrorf("--profile is required")
	}
	return path, nil
}
