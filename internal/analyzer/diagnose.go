package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

// Diagnose turns the errors that end a run early into the one-line message
// shown to the user. It returns "" for errors that are real failures, such as
// a bad timestamp, which the caller must surface as an error.
func Diagnose(err error, config *Config) string {
	if err == nil {
		return ""
	}

	var readErr *model.ReadError
	switch {
	case errors.Is(err, model.ErrFileNotFound):
		return fmt.Sprintf("Error: File not found at %s", config.FilePath)
	case errors.As(err, &readErr):
		return fmt.Sprintf("Error reading file: %v", readErr.Err)
	case errors.Is(err, model.ErrNoMatchingData):
		return fmt.Sprintf("No %s data found. Check the '%s' column values.",
			strings.ToLower(config.Discipline), model.ColumnDiscipline)
	default:
		return ""
	}
}
