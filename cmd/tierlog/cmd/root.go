// Package cmd provides the CLI commands for tierlog.
package cmd

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/philipp01105/tierlog/config"
	"github.com/philipp01105/tierlog/handler/filehandler"
	"github.com/philipp01105/tierlog/logger"
)

// options holds the persistent flags shared by all subcommands
type options struct {
	configPath string
	name       string
	dir        string
	ext        string
	mode       string
	timeFormat string
	sequential bool
	echo       bool
	debug      bool
}

// NewRootCmd creates the root command for the tierlog CLI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tierlog",
		Short: "Write leveled log lines into main, info and error files",
		Long: `tierlog appends timestamped lines to three files in one directory:
the main file receives every level, the info-tier file DEBUG to WARNING
and the error-tier file ERROR to FATAL.`,
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Load settings from a YAML or TOML file")
	f.StringVarP(&opts.name, "name", "n", "log", "Base file name")
	f.StringVarP(&opts.dir, "dir", "d", "", "Output directory (default: working directory)")
	f.StringVar(&opts.ext, "ext", "txt", "File extension")
	f.StringVar(&opts.mode, "mode", "append", "Open mode: append or truncate")
	f.StringVar(&opts.timeFormat, "time-format", "%Y/%m/%d %H:%M:%S", "strftime timestamp pattern")
	f.BoolVar(&opts.sequential, "sequential", false, "Open and close the files around every write")
	f.BoolVar(&opts.echo, "echo", isatty.IsTerminal(os.Stdout.Fd()), "Echo lines to stdout")
	f.BoolVar(&opts.debug, "debug", false, "Write DEBUG messages")

	cmd.AddCommand(newLogCmd(opts))
	cmd.AddCommand(newDemoCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loggerConfig merges the config file (if any) with explicitly set flags.
// Flags win over file values; unset flags keep the file value.
func (o *options) loggerConfig(cmd *cobra.Command) (logger.Config, error) {
	var cfg logger.Config
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return logger.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	set := func(name string) bool {
		return o.configPath == "" || flags.Changed(name)
	}

	if set("name") {
		cfg.Name = o.name
	}
	if set("dir") {
		cfg.Dir = o.dir
	}
	if set("ext") {
		cfg.Ext = o.ext
	}
	if set("mode") {
		mode, err := filehandler.ParseOpenMode(strings.ToLower(o.mode))
		if err != nil {
			return logger.Config{}, err
		}
		cfg.Mode = mode
	}
	if set("time-format") {
		cfg.TimeFormat = o.timeFormat
	}
	if set("sequential") {
		cfg.Sequential = o.sequential
	}
	if set("echo") {
		cfg.Echo = o.echo
	}
	if set("debug") {
		cfg.Debug = o.debug
	}

	cfg.Console = cmd.OutOrStdout()
	return cfg, nil
}
