package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ANSI control sequences
const (
	ClearScreen    = "\033[2J"
	MoveCursorHome = "\033[H"
)

// TerminalDisplay writes repeated reports to one stream, clearing between
// them when the stream is an interactive terminal.
type TerminalDisplay struct {
	out         io.Writer
	interactive bool
}

// NewTerminalDisplay inspects f to decide whether escape sequences are safe.
func NewTerminalDisplay(f *os.File) *TerminalDisplay {
	return &TerminalDisplay{
		out:         f,
		interactive: term.IsTerminal(int(f.Fd())),
	}
}

// NewPlainDisplay never emits escape sequences.
func NewPlainDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{out: out}
}

func (td *TerminalDisplay) Writer() io.Writer {
	return td.out
}

func (td *TerminalDisplay) Interactive() bool {
	return td.interactive
}

// ClearScreen wipes the screen before a redraw. It is a no-op for pipes and
// files so redirected output stays clean.
func (td *TerminalDisplay) ClearScreen() {
	if td.interactive {
		fmt.Fprint(td.out, ClearScreen+MoveCursorHome)
	}
}

// RenderStatus prints the footer shown below each report while watching.
func (td *TerminalDisplay) RenderStatus(path string, at time.Time) {
	fmt.Fprintf(td.out, "\nWatching %s (updated %s). Press Ctrl+C to stop.\n",
		path, at.Format("15:04:05"))
}
