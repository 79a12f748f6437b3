package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/tierlog/logger"
)

func newLogCmd(opts *options) *cobra.Command {
	var levelName string

	cmd := &cobra.Command{
		Use:   "log [flags] message...",
		Short: "Append one message at the given level",
		Example: `  tierlog log --name app --dir logs "service started"
  tierlog log --level error "disk full"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := logger.ParseLevel(levelName)
			if !ok {
				return fmt.Errorf("unknown level %q", levelName)
			}

			cfg, err := opts.loggerConfig(cmd)
			if err != nil {
				return err
			}

			msg := strings.Join(args, " ")
			return logger.Scoped(cfg, func(l *logger.Logger) error {
				switch level {
				case logger.DebugLevel:
					return l.Debug(msg)
				case logger.ExceptionLevel:
					return l.Exception(msg, nil)
				default:
					return l.Log(level, msg)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&levelName, "level", "l", "info", "Level: debug, info, warning, error, exception, fatal")

	return cmd
}
