package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/vizpipe/internal/app"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "VIZPIPE"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const (
	flagSpec      = "spec"
	flagOut       = "out"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagDataName  = "data-name"
	flagPretty    = "pretty"
)

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// Flags take precedence over VIZPIPE_* environment variables, which take
// precedence over defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg *app.Config
	cmd := &cobra.Command{
		Use:   "vizpipe [flags] [SPEC_PATH]",
		Short: "Compile chart specifications into dataflow dataset definitions.",
		Long: `vizpipe - compiles declarative chart specifications into the ordered
dataset definitions a dataflow engine runs.

SPEC_PATH is a single .hcl, .json, .yaml or .yml chart file, or a directory
that is searched recursively for them.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			path := v.GetString(flagSpec)
			if path == "" && len(positional) > 0 {
				path = positional[0]
			}
			if path == "" {
				return cmd.Usage()
			}

			c, err := app.NewConfig(app.Config{
				SpecPath:  path,
				OutPath:   v.GetString(flagOut),
				DataName:  v.GetString(flagDataName),
				Pretty:    v.GetBool(flagPretty),
				LogFormat: strings.ToLower(v.GetString(flagLogFormat)),
				LogLevel:  strings.ToLower(v.GetString(flagLogLevel)),
			})
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringP(flagSpec, "s", "", "Path to the chart file or directory.")
	flags.StringP(flagOut, "o", "", "Write output to this file instead of stdout.")
	flags.String(flagLogLevel, "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String(flagLogFormat, "console", "Log output format. Options: 'console', 'json' or 'logfmt'.")
	flags.String(flagDataName, "", "Dataset facet domains read from. Defaults to the chart's data table.")
	flags.Bool(flagPretty, false, "Indent the JSON output.")
	for _, name := range []string{flagSpec, flagOut, flagLogLevel, flagLogFormat, flagDataName, flagPretty} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg == nil {
		// Help was requested or no path was given.
		return nil, true, nil
	}
	return cfg, false, nil
}
