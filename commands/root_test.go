package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/penwyp/go-peloton-weekly/internal/testing/fixtures"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioAReport = `WEEKLY CYCLING TOTALS (Monday to Sunday)
================================================================================
Week 2024-01-01 to 2024-01-07: Calories: 300, Miles: 5.00, kJ: 150

================================================================================
SUMMARY STATISTICS
================================================================================
Total weeks analyzed: 1
Total Calories (all weeks): 300
Average weekly calories: 300
Total Miles (all weeks): 5.00
Average weekly miles: 5.00
Total kJ Output (all weeks): 150
Average weekly kJ: 150

PEAK PERFORMANCE:
Highest calorie week: 2024-01-01 (300 calories)
Highest mileage week: 2024-01-01 (5.0 miles)
Most active week: 2024-01-01 (1 workouts)
`

// executeRoot runs the root command with fresh flag values and returns what
// it wrote to stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/Downloads/130RFlat_workouts.csv",
			expected: func(home string) string {
				return filepath.Join(home, "Downloads/130RFlat_workouts.csv")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path.csv",
			expected: func(home string) string {
				return "/absolute/path.csv"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path.csv",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path.csv")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected(home), expandPath(tt.input))
		})
	}
}

func TestCommandStructure(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "go-peloton-weekly [flags]", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "Monday-to-Sunday")
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		name     string
		flagName string
		expected string
	}{
		{"file flag", "file", "~/Downloads/130RFlat_workouts.csv"},
		{"discipline flag", "discipline", "Cycling"},
		{"output flag", "output", "text"},
		{"format flag", "format", ""},
		{"watch flag", "watch", "false"},
		{"debug flag", "debug", "false"},
		{"log-file flag", "log-file", ""},
		{"log-format flag", "log-format", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				flag = rootCmd.PersistentFlags().Lookup(tt.flagName)
			}
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.expected, flag.DefValue)
		})
	}

	assert.Equal(t, "f", rootCmd.Flags().Lookup("file").Shorthand)
	assert.Equal(t, "o", rootCmd.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "w", rootCmd.Flags().Lookup("watch").Shorthand)
}

func TestRunReportSingleWorkout(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, scenarioAReport, out)
}

func TestRunReportIsRepeatable(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	workouts := append(fixtures.WeekOf("2024-01-01", 3, "420", "11.2", "260"),
		fixtures.WeekOf("2024-01-08", 5, "380", "9.8", "240")...)
	workouts = append(workouts, fixtures.Running("2024-01-09 07:00 (PST)", "250", "3.1"))
	path, err := gen.WriteCSV("workouts.csv", workouts...)
	require.NoError(t, err)

	first, err := executeRoot(t, "-f", path)
	require.NoError(t, err)
	second, err := executeRoot(t, "-f", path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Week 2024-01-01 to 2024-01-07: Calories: 1,260, Miles: 33.60, kJ: 780\n")
	assert.Contains(t, first, "Week 2024-01-08 to 2024-01-14: Calories: 1,900, Miles: 49.00, kJ: 1,200\n")
	assert.Contains(t, first, "Most active week: 2024-01-08 (5 workouts)\n")
}

func TestRunReportMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	out, err := executeRoot(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Error: File not found at "+path+"\n", out)
}

func TestRunReportNoCyclingData(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Running("2024-01-03 08:15 (PST)", "250", "3.1"),
		fixtures.Running("2024-01-04 08:15 (PST)", "260", "3.2"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "No cycling data found. Check the 'Fitness Discipline' column values.\n", out)
	assert.NotContains(t, out, "WEEKLY")
}

func TestRunReportOtherDiscipline(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Running("2024-01-03 08:15 (PST)", "250", "3.1"),
		fixtures.Cycling("2024-01-04 08:15 (PST)", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path, "--discipline", "Running")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "WEEKLY RUNNING TOTALS (Monday to Sunday)\n"))
	assert.Contains(t, out, "Calories: 250, Miles: 3.10, kJ: 0")
}

func TestRunReportMissingColumns(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSVWithHeader("workouts.csv", fixtures.Header("Total Output"),
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Error reading file: missing required columns: Total Output\n", out)
}

func TestRunReportBadTimestamp(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150"),
		fixtures.Cycling("03/01/2024 08:15", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "03/01/2024 08:15")
	assert.Empty(t, out)
}

func TestRunReportBadMetric(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "lots", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Calories Burned")
	assert.Empty(t, out)
}

func TestRunReportNonFiniteMetric(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "NaN"))
	require.NoError(t, err)

	out, err := executeRoot(t, "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Total Output")
	assert.NotContains(t, out, "NaN")
	assert.Empty(t, out)
}

func TestRunReportDisciplineMatchIsExact(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	padded := fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150")
	padded.Discipline = " Cycling"
	path, err := gen.WriteCSV("workouts.csv", padded)
	require.NoError(t, err)

	out, err := executeRoot(t, "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "No cycling data found. Check the 'Fitness Discipline' column values.\n", out)
}

func TestRunReportSeveralZoneAnnotations(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST) (X)", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "-f", path)
	require.NoError(t, err)
	assert.Equal(t, scenarioAReport, out)
}

func TestRunReportFormatAlias(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path, "--format", "json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, "Cycling", result["discipline"])
	assert.Len(t, result["weeks"], 1)
}

func TestRunReportXLSX(t *testing.T) {
	gen := fixtures.NewExportGenerator(t.TempDir())
	path, err := gen.WriteXLSX("workouts.xlsx",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150"))
	require.NoError(t, err)

	out, err := executeRoot(t, "--file", path)
	require.NoError(t, err)
	assert.Equal(t, scenarioAReport, out)
}

func TestRunReportInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown output", []string{"--output", "yaml"}},
		{"empty discipline", []string{"--discipline", ""}},
		{"unknown log format", []string{"--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "workouts.csv")
			out, err := executeRoot(t, append([]string{"--file", path}, tt.args...)...)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestRunReportLogFile(t *testing.T) {
	dir := t.TempDir()
	gen := fixtures.NewExportGenerator(dir)
	path, err := gen.WriteCSV("workouts.csv",
		fixtures.Cycling("2024-01-03 08:15 (PST)", "300", "5.0", "150"))
	require.NoError(t, err)
	logPath := filepath.Join(dir, "logs", "app.log")

	out, err := executeRoot(t, "--file", path, "--log-file", logPath, "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, scenarioAReport, out)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "log line is JSON: %s", line)
	}
	assert.Contains(t, string(data), "Starting weekly workout analysis")
}
