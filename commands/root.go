package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/penwyp/go-peloton-weekly/internal/analyzer"
	"github.com/penwyp/go-peloton-weekly/internal/application/watch"
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/data/watcher"
	"github.com/penwyp/go-peloton-weekly/internal/presentation/display"
	"github.com/penwyp/go-peloton-weekly/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Input
	filePath   string
	discipline string

	// Output related
	outputFormat string
	formatAlias  string
	watchMode    bool

	rootCmd = &cobra.Command{
		Use:   "go-peloton-weekly [flags]",
		Short: "Weekly totals from a Peloton workout export",
		Long: `go-peloton-weekly reads a Peloton workout export and reports calories, miles and
output per Monday-to-Sunday week, followed by summary and peak statistics.

Examples:
  go-peloton-weekly                                  # Cycling report for ~/Downloads/130RFlat_workouts.csv
  go-peloton-weekly -f workouts.csv                  # Use another export
  go-peloton-weekly -f workouts.xlsx                 # Read the first sheet of a spreadsheet export
  go-peloton-weekly --discipline Running             # Report running instead of cycling
  go-peloton-weekly --output json > weekly.json      # Save the report as JSON
  go-peloton-weekly --output table --watch           # Redraw whenever the export changes`,
		SilenceUsage: true,
		RunE:         runReport,
	}
)

const (
	defaultFilePath   = "~/Downloads/130RFlat_workouts.csv"
	defaultDiscipline = model.DisciplineCycling
)

func init() {
	// Input
	rootCmd.Flags().StringVarP(&filePath, "file", "f", defaultFilePath,
		"Workout export path (.csv or .xlsx)")
	rootCmd.Flags().StringVar(&discipline, "discipline", defaultDiscipline,
		"Fitness Discipline to report on")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", analyzer.OutputText,
		"Output format (text, table, json, csv, summary)")
	rootCmd.Flags().StringVar(&formatAlias, "format", "",
		"Alias for --output")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Re-run the report whenever the export changes")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Also write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(util.FormatText),
		"Log line format (text, json)")
}

type logOptions struct {
	Format string `validate:"oneof=text json"`
}

func runReport(cmd *cobra.Command, args []string) error {
	// Handle format alias
	if format := cmd.Flags().Lookup("format"); format != nil && format.Changed {
		outputFormat = formatAlias
	}

	if err := initLogging(); err != nil {
		return err
	}
	defer util.CloseLogger()

	config := &analyzer.Config{
		FilePath:     expandPath(filePath),
		Discipline:   discipline,
		OutputFormat: outputFormat,
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if watchMode {
		return runWatch(cmd, config)
	}
	return report(config, cmd.OutOrStdout())
}

// report runs the analysis once. A missing file, an unreadable file or an
// empty filter result prints a message and is not an error.
func report(config *analyzer.Config, out io.Writer) error {
	err := analyzer.New(config, out).Run()
	if msg := analyzer.Diagnose(err, config); msg != "" {
		util.LogWarn(msg, util.F("error", err.Error()))
		fmt.Fprintln(out, msg)
		return nil
	}
	return err
}

func runWatch(cmd *cobra.Command, config *analyzer.Config) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", config.FilePath, err)
	}

	var td *display.TerminalDisplay
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		td = display.NewTerminalDisplay(f)
	} else {
		td = display.NewPlainDisplay(cmd.OutOrStdout())
	}

	util.LogInfo("Watching export", util.F("file", config.FilePath))
	rc := watch.NewRefreshController(config.FilePath, func(w io.Writer) error {
		return report(config, w)
	}, td)
	return rc.Run(ctx, fw)
}

func initLogging() error {
	if err := validator.New().Struct(logOptions{Format: logFormat}); err != nil {
		return fmt.Errorf("invalid --log-format %q: %w", logFormat, err)
	}

	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	opts := util.LoggerOptions{
		Level:   logLevel,
		Console: debug,
		Format:  util.LogFormat(logFormat),
	}
	if logFile != "" {
		opts.File = expandPath(logFile)
	}
	return util.InitLogger(opts)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
