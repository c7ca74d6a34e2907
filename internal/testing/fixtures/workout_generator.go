package fixtures

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/xuri/excelize/v2"
)

// ExportHeader mirrors the column order of a Peloton workout CSV export.
var ExportHeader = []string{
	"Workout Timestamp", "Live/On-Demand", "Instructor Name", "Length (minutes)",
	"Fitness Discipline", "Type", "Title", "Class Timestamp", "Total Output",
	"Avg. Watts", "Avg. Resistance", "Avg. Cadence (RPM)", "Avg. Speed (mph)",
	"Distance (mi)", "Calories Burned", "Avg. Heartrate", "Avg. Incline",
	"Avg. Pace (min/mi)",
}

// Workout is the subset of an export row tests care about.
type Workout struct {
	Timestamp  string
	Discipline string
	Calories   string
	Distance   string
	Output     string
	Title      string
}

// Cycling builds a cycling workout.
func Cycling(timestamp string, calories, distance, output string) Workout {
	return Workout{
		Timestamp:  timestamp,
		Discipline: model.DisciplineCycling,
		Calories:   calories,
		Distance:   distance,
		Output:     output,
		Title:      "30 min Power Zone Ride",
	}
}

// Running builds a running workout.
func Running(timestamp string, calories, distance string) Workout {
	return Workout{
		Timestamp:  timestamp,
		Discipline: model.DisciplineRunning,
		Calories:   calories,
		Distance:   distance,
		Title:      "20 min Endurance Run",
	}
}

// Row renders w in ExportHeader order, filling the columns the report never
// reads with plausible values.
func (w Workout) Row() []string {
	return w.RowFor(ExportHeader)
}

// RowFor renders w in the order of header. Unknown header names get "".
func (w Workout) RowFor(header []string) []string {
	values := map[string]string{
		"Workout Timestamp":  w.Timestamp,
		"Live/On-Demand":     "On Demand",
		"Instructor Name":    "Matt Wilpers",
		"Length (minutes)":   "30",
		"Fitness Discipline": w.Discipline,
		"Type":               "Power Zone",
		"Title":              w.Title,
		"Class Timestamp":    "2023-11-20 06:00 (EST)",
		"Total Output":       w.Output,
		"Avg. Watts":         "127",
		"Avg. Resistance":    "41%",
		"Avg. Cadence (RPM)": "82",
		"Avg. Speed (mph)":   "17.4",
		"Distance (mi)":      w.Distance,
		"Calories Burned":    w.Calories,
	}
	row := make([]string, len(header))
	for i, name := range header {
		row[i] = values[name]
	}
	return row
}

// ExportGenerator writes workout exports into a directory.
type ExportGenerator struct {
	baseDir string
}

// NewExportGenerator creates a new export generator
func NewExportGenerator(baseDir string) *ExportGenerator {
	return &ExportGenerator{baseDir: baseDir}
}

// WriteCSV writes workouts as a CSV export and returns its path.
func (g *ExportGenerator) WriteCSV(name string, workouts ...Workout) (string, error) {
	return g.WriteCSVWithHeader(name, ExportHeader, workouts...)
}

// WriteCSVWithHeader writes an export with a custom header; each row follows
// the header's column order.
func (g *ExportGenerator) WriteCSVWithHeader(name string, header []string, workouts ...Workout) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, workout := range workouts {
		if err := w.Write(workout.RowFor(header)); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}

// WriteRaw writes content verbatim and returns its path.
func (g *ExportGenerator) WriteRaw(name, content string) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteXLSX writes workouts to the first sheet of a workbook.
func (g *ExportGenerator) WriteXLSX(name string, workouts ...Workout) (string, error) {
	path := filepath.Join(g.baseDir, name)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := writeSheetRow(f, sheet, 1, ExportHeader); err != nil {
		return "", err
	}
	for i, workout := range workouts {
		if err := writeSheetRow(f, sheet, i+2, workout.Row()); err != nil {
			return "", err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// WeekOf returns n cycling workouts spread across the week starting on monday
// (YYYY-MM-DD), one per day, each with the given metrics.
func WeekOf(monday string, n int, calories, distance, output string) []Workout {
	start, err := time.Parse("2006-01-02", monday)
	if err != nil {
		panic(fmt.Sprintf("fixtures: bad monday %q: %v", monday, err))
	}

	workouts := make([]Workout, 0, n)
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i%7).Add(time.Duration(6+i%12)*time.Hour + 30*time.Minute)
		workouts = append(workouts, Cycling(day.Format("2006-01-02 15:04")+" (PST)", calories, distance, output))
	}
	return workouts
}

// Header returns ExportHeader without the named columns.
func Header(without ...string) []string {
	drop := make(map[string]bool, len(without))
	for _, name := range without {
		drop[strings.TrimSpace(name)] = true
	}
	header := make([]string, 0, len(ExportHeader))
	for _, name := range ExportHeader {
		if !drop[name] {
			header = append(header, name)
		}
	}
	return header
}
