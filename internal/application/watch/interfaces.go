package watch

import (
	"io"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

// ReportFunc renders one complete report into w.
type ReportFunc func(w io.Writer) error

// EventSource delivers change notifications for the watched export.
type EventSource interface {
	Events() <-chan model.FileEvent
	Close() error
}

// DisplayController handles the screen between redraws.
type DisplayController interface {
	Writer() io.Writer
	ClearScreen()
	RenderStatus(path string, at time.Time)
}
