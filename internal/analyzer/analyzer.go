package analyzer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/penwyp/go-peloton-weekly/internal/data/aggregator"
	"github.com/penwyp/go-peloton-weekly/internal/data/filter"
	"github.com/penwyp/go-peloton-weekly/internal/data/loader"
	"github.com/penwyp/go-peloton-weekly/internal/presentation/formatter"
	"github.com/penwyp/go-peloton-weekly/internal/util"
)

// Output formats
const (
	OutputText    = "text"
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

type Config struct {
	FilePath     string `validate:"required"`
	Discipline   string `validate:"required"`
	OutputFormat string `validate:"required,oneof=text table json csv summary"`
}

// Validate checks the config before any file is touched.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

type Analyzer struct {
	config     *Config
	loader     *loader.Loader
	aggregator *aggregator.Aggregator
	out        io.Writer
}

// New creates an Analyzer writing its report to out; nil means stdout.
func New(config *Config, out io.Writer) *Analyzer {
	if out == nil {
		out = os.Stdout
	}
	return &Analyzer{
		config:     config,
		loader:     loader.NewLoader(),
		aggregator: aggregator.NewAggregator(),
		out:        out,
	}
}

// Run executes the whole pipeline and writes the report. Nothing is written
// unless every phase succeeds.
func (a *Analyzer) Run() error {
	if err := a.config.Validate(); err != nil {
		return err
	}

	report, err := a.BuildReport()
	if err != nil {
		return err
	}

	outputStart := time.Now()
	err = a.formatAndOutput(report)
	util.LogDebug(fmt.Sprintf("Formatting and output duration: %v", time.Since(outputStart)))
	return err
}

// BuildReport loads, filters and aggregates the export.
func (a *Analyzer) BuildReport() (*formatter.Report, error) {
	startTime := time.Now()
	util.LogInfo("Starting weekly workout analysis", util.F("file", a.config.FilePath), util.F("discipline", a.config.Discipline))

	// Phase 1: Load
	records, err := a.loader.Load(a.config.FilePath)
	if err != nil {
		return nil, err
	}
	util.LogDebug(fmt.Sprintf("Phase 1 - Loaded %d rows", len(records)))

	// Phase 2: Filter
	matched, err := filter.ByDiscipline(records, a.config.Discipline)
	if err != nil {
		return nil, err
	}
	util.LogDebug(fmt.Sprintf("Phase 2 - %d %s workouts", len(matched), a.config.Discipline))

	// Phase 3: Week keys and aggregation
	weeks, err := a.aggregator.AggregateByWeek(matched)
	if err != nil {
		return nil, err
	}
	util.LogDebug(fmt.Sprintf("Phase 3 - %d weeks", len(weeks)))

	// Phase 4: Summary and peaks
	report := &formatter.Report{
		Discipline: a.config.Discipline,
		Weeks:      weeks,
		Summary:    Summarize(weeks),
	}
	report.Peaks, _ = FindPeaks(weeks)

	util.LogInfo(fmt.Sprintf("Analysis finished in %v", time.Since(startTime)),
		util.F("weeks", len(weeks)), util.F("workouts", len(matched)))
	return report, nil
}

func (a *Analyzer) formatAndOutput(report *formatter.Report) error {
	var f formatter.Formatter
	switch a.config.OutputFormat {
	case OutputJSON:
		f = formatter.NewJSONFormatter(a.out)
	case OutputCSV:
		f = formatter.NewCSVFormatter(a.out)
	case OutputTable:
		f = formatter.NewTableFormatter(a.out)
	case OutputSummary:
		f = formatter.NewSummaryFormatter(a.out)
	default:
		f = formatter.NewTextFormatter(a.out)
	}
	return f.Format(report)
}
