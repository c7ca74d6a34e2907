package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/constants"
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/util"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = constants.DebounceMillis * time.Millisecond

// RefreshController re-renders the report whenever the export changes.
type RefreshController struct {
	path     string
	report   ReportFunc
	display  DisplayController
	debounce time.Duration
	now      func() time.Time

	refreshMutex sync.Mutex // Prevent concurrent refreshes
}

func NewRefreshController(path string, report ReportFunc, display DisplayController) *RefreshController {
	return &RefreshController{
		path:     path,
		report:   report,
		display:  display,
		debounce: DefaultDebounce,
		now:      time.Now,
	}
}

// SetDebounce overrides the quiet period awaited before a refresh.
func (rc *RefreshController) SetDebounce(d time.Duration) {
	rc.debounce = d
}

// Refresh clears the screen and renders one report. Report failures are
// shown in place of the report so that a fixed file recovers on the next save.
func (rc *RefreshController) Refresh() error {
	rc.refreshMutex.Lock()
	defer rc.refreshMutex.Unlock()

	rc.display.ClearScreen()
	err := rc.report(rc.display.Writer())
	if err != nil {
		util.LogError("Report refresh failed", util.F("error", err.Error()))
		fmt.Fprintf(rc.display.Writer(), "Error: %v\n", err)
	}
	rc.display.RenderStatus(rc.path, rc.now())
	return err
}

// Run renders once, then again after every debounced change, until ctx is
// cancelled or the event source closes.
func (rc *RefreshController) Run(ctx context.Context, source EventSource) error {
	defer source.Close()

	rc.Refresh()

	events := source.Events()
	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Watch stopped")
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			util.LogDebug("Export changed", util.F("path", event.Path), util.F("op", event.Operation))

			if !rc.settle(ctx, events) {
				return nil
			}
			rc.Refresh()
		}
	}
}

// settle waits until no event has arrived for the debounce period. It
// reports false when the watch should end.
func (rc *RefreshController) settle(ctx context.Context, events <-chan model.FileEvent) bool {
	timer := time.NewTimer(rc.debounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-events:
			if !ok {
				return false
			}
			timer.Reset(rc.debounce)
		case <-timer.C:
			return true
		}
	}
}
