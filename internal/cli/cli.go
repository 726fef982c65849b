package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/config"
	"github.com/pfrederiksen/dtu-calendar/internal/logger"
	"github.com/pfrederiksen/dtu-calendar/internal/scraper"
	"github.com/pfrederiksen/dtu-calendar/internal/service"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotFound = 2
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

// app holds what every subcommand needs. It is built once per invocation in
// the root command's PersistentPreRunE and released by run.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *logger.Metrics
	courses *service.CourseService
	format  OutputFormat
}

// NewRootCmd creates the root command with every subcommand attached.
// Callers that execute it directly skip the cleanup done by Execute.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dtu-calendar",
		Short: "Browse Duy Tan University course schedules",
		Long: `A CLI and HTTP API over the Duy Tan University course registration site.
Lists academic years, semesters and programs, searches courses, and turns a
class code into its weekly schedule or an iCalendar file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (default: ./config/config.yaml or ./config.yaml)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and print fetch metrics")

	cmd.AddCommand(
		newServeCmd(a),
		newYearsCmd(a),
		newSemestersCmd(a),
		newProgramsCmd(a),
		newSearchCmd(a),
		newDetailCmd(a),
		newCalendarCmd(a),
		newICSCmd(a),
	)

	return cmd
}

func (a *app) init() error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	a.format = format

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
		cfg.Log.Format = "console"
	}
	a.cfg = cfg

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.log = log
	a.metrics = logger.NewMetrics()

	fetcher := scraper.NewFetcher(&cfg.Upstream, log, a.metrics)
	a.courses = service.NewCourseService(scraper.New(fetcher, cfg.Upstream.BaseURL), service.FirstResult{}, log)

	log.Debug("configured",
		zap.String("base_url", cfg.Upstream.BaseURL),
		zap.Duration("timeout", cfg.Upstream.Timeout))
	return nil
}

func (a *app) close(stderr io.Writer) {
	if a.log == nil {
		return
	}
	if flagVerbose && a.metrics != nil {
		fmt.Fprintln(stderr, "Metrics:")
		writeJSON(stderr, a.metrics.Snapshot())
	}
	_ = a.log.Sync()
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, service.ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// run executes the CLI with args. The logger is flushed and, with --verbose,
// metrics are printed whether or not the command succeeded.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close(stderr)

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// Execute runs the CLI
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCode(err))
	}
}
