package cmd

import (
	"github.com/spf13/cobra"

	"github.com/philipp01105/tierlog/logger"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write one line per tier to test.txt, test_inf.txt and test_err.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loggerConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") && opts.configPath == "" {
				cfg.Name = "test"
			}
			cfg.Sequential = true
			cfg.Echo = true

			return logger.Scoped(cfg, func(l *logger.Logger) error {
				steps := []func(string) error{l.Info, l.Warn, l.Error, l.Fatal}
				msgs := []string{"test1", "test2", "test3", "test4"}
				for i, step := range steps {
					if err := step(msgs[i]); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
