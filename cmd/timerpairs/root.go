package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mpyw/timerpairs/internal/config"
	"github.com/mpyw/timerpairs/internal/jslint"
	"github.com/mpyw/timerpairs/internal/report"
	"github.com/mpyw/timerpairs/internal/scope"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK       = 0
	exitProblems = 1
	exitFailure  = 2
)

const envPrefix = "TIMERPAIRS"

// errProblems is returned when error-severity diagnostics were reported.
var errProblems = errors.New("problems found")

// getVersionInfo returns version information, prioritizing ldflags values over build info
func getVersionInfo() (string, string, string) {
	if version != "dev" || commit != "none" || date != "unknown" {
		return version, commit, date
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}

	moduleVersion := version
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		moduleVersion = buildInfo.Main.Version
	}

	vcsCommit := commit
	vcsTime := date

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsCommit = setting.Value
			if len(vcsCommit) > 7 {
				vcsCommit = vcsCommit[:7]
			}
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	return moduleVersion, vcsCommit, vcsTime
}

// options holds the flag values. Values that were neither given as flags
// nor set in the environment leave the configuration file untouched.
type options struct {
	v *viper.Viper

	configFile string
	format     string
	jobs       int
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{v: viper.New()}

	v, c, d := getVersionInfo()

	cmd := &cobra.Command{
		Use:   "timerpairs [flags] [path ...]",
		Short: "Report unmatched console.time/console.timeEnd calls",
		Long: `timerpairs checks JavaScript sources for timer calls that have no
counterpart: a console.time("label") without a console.timeEnd("label")
in the same scope, or the other way around.

Directories are walked for files with a configured extension. Settings are
read from .timerpairs.yaml (or --config), then TIMERPAIRS_* environment
variables, then flags.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", v, c, d),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("timerpairs {{.Version}}\n")

	opts.registerFlags(cmd.Flags())

	opts.v.SetEnvPrefix(envPrefix)
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()
	_ = opts.v.BindPFlags(cmd.Flags())

	return cmd
}

// registerFlags defines the command line flags. Rule flags have no
// default of their own; the configuration file supplies it.
func (o *options) registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.configFile, "config", "", "config file (default is ./"+config.DefaultFile+")")
	flags.StringSlice("object-names", nil, "receiver names whose timer calls are checked (default [console])")
	flags.String("scope", "", "matching boundary: File, SameFunction or SameRootFunction (default File)")
	flags.String("start-method", "", "name of the method that starts a timer (default time)")
	flags.String("end-method", "", "name of the method that ends a timer (default timeEnd)")
	flags.String("severity", "", "severity of unmatched timer diagnostics: error or warning (default error)")
	flags.StringVar(&o.format, "format", report.FormatText, "output format: text, json or table")
	flags.IntVar(&o.jobs, "jobs", 0, "number of files linted in parallel (default GOMAXPROCS)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
}

func (o *options) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if o.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	formatter, err := report.NewFormatter(o.v.GetString("format"))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	logger.Debug("linting",
		"paths", args,
		"objectNames", cfg.ObjectNames,
		"scope", cfg.Scope,
		"startMethod", cfg.StartMethod,
		"endMethod", cfg.EndMethod,
	)

	linter := jslint.New(cfg,
		jslint.WithLogger(logger),
		jslint.WithJobs(o.v.GetInt("jobs")),
	)

	diags, err := linter.Run(ctx, args)
	if err != nil {
		return err
	}

	out, err := formatter.Format(diags)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if report.Count(diags).Errors > 0 {
		return errProblems
	}

	return nil
}

// loadConfig layers the configuration file, environment and flags.
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if path := o.v.GetString("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadDefault(".")
	}
	if err != nil {
		return nil, err
	}

	if o.v.IsSet("object-names") {
		cfg.ObjectNames = splitList(o.v.GetStringSlice("object-names"))
	}
	if o.v.IsSet("scope") {
		cfg.Scope = scope.Mode(o.v.GetString("scope"))
	}
	if o.v.IsSet("start-method") {
		cfg.StartMethod = o.v.GetString("start-method")
	}
	if o.v.IsSet("end-method") {
		cfg.EndMethod = o.v.GetString("end-method")
	}
	if o.v.IsSet("severity") {
		severity, err := report.ParseSeverity(o.v.GetString("severity"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
		}
		cfg.Severity = severity
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList flattens comma and space separated values.
func splitList(values []string) []string {
	out := []string{}

	for _, v := range values {
		out = append(out, strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })...)
	}

	return out
}

// run executes the command and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errProblems):
		return exitProblems
	default:
		fmt.Fprintf(stderr, "timerpairs: %v\n", err)
		return exitFailure
	}
}
