package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/util"
	"github.com/xuri/excelize/v2"
)

// Loader reads a workout export into memory.
type Loader struct {
	columns []string
}

// NewLoader creates a Loader expecting the standard export columns.
func NewLoader() *Loader {
	return &Loader{columns: model.RequiredColumns}
}

// Load reads the export at path. Files ending in .xlsx are read from their
// first sheet, anything else is treated as CSV.
//
// A missing path yields an error wrapping model.ErrFileNotFound; every other
// failure is a *model.ReadError.
func (l *Loader) Load(path string) ([]model.WorkoutRecord, error) {
	start := time.Now()
	util.LogDebug(fmt.Sprintf("Start loading export: %s", path))

	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSX(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrFileNotFound, path)
		}
		util.LogDebug(fmt.Sprintf("Failed to read export: %s - %v", path, err))
		return nil, &model.ReadError{Path: path, Err: err}
	}

	records, err := l.decode(rows)
	if err != nil {
		return nil, &model.ReadError{Path: path, Err: err}
	}

	util.LogDebug(fmt.Sprintf("Loaded %d rows from %s in %v", len(records), path, time.Since(start)))
	return records, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV reads every record of a CSV stream. Rows may have differing widths;
// decode handles short rows.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	// excelize reports a missing file through its own open call; check first so
	// the not-found path stays distinguishable.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// decode maps the header row to column positions and extracts the fields the
// report reads from every data row.
func (l *Loader) decode(rows [][]string) ([]model.WorkoutRecord, error) {
	if len(rows) == 0 {
		return nil, &model.SchemaError{Missing: l.columns}
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		// Excel-saved CSVs often start with a UTF-8 BOM.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, column := range l.columns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &model.SchemaError{Missing: missing}
	}

	cell := func(row []string, column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]model.WorkoutRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, model.WorkoutRecord{
			Row:        i + 1,
			Discipline: cell(row, model.ColumnDiscipline),
			Timestamp:  cell(row, model.ColumnTimestamp),
			Calories:   cell(row, model.ColumnCalories),
			Distance:   cell(row, model.ColumnDistance),
			Output:     cell(row, model.ColumnOutput),
		})
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
