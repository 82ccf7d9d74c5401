// internal/cli/config.go
package cli

import (
	"context"

	ucli "github.com/urfave/cli/v3"

	"profseq/internal/config"
	"profseq/internal/output"
)

var configOutFlag = &ucli.StringFlag{
	Name:  "out",
	Usage: "write the settings to this file instead of stdout",
}

// configCommand prints or saves the settings in effect after the config
// file and global flags are applied, in the format --config reads.
func configCommand(s *settings) *ucli.Command {
	return &ucli.Command{
		Name:         "config",
		Usage:        "print or save the effective settings as YAML",
		Flags:        []ucli.Flag{configOutFlag},
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *ucli.Command) error {
			out := cmd.String(configOutFlag.Name)
			if out == "" {
				return writeError(output.EncodeYAML(s.stdout, s.cfg))
			}
			if err := config.Save(out, s.cfg); err != nil {
				return writeError(err)
			}
			s.log.Info("config saved", "file", out)
			return nil
		},
	}
}
