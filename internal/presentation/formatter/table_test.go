package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableFormatter(t *testing.T) {
	formatter := NewTableFormatter(&bytes.Buffer{})
	require.NotNil(t, formatter)
	assert.Len(t, formatter.headers, 6)
}

func TestTableFormatterFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(multiWeekReport()))
	out := buf.String()

	wantInBody := []string{
		"Week", "Workouts", "Calories", "Miles", "kJ",
		"2024-01-01", "2024-01-07", "1,834", "31.46",
		"2024-01-08", "2,210", "1,045",
		"Total", "4,684", "100.06", "2,257",
	}
	for _, want := range wantInBody {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, header, separator, 3 weeks, separator, total, bottom
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[8], "└"))

	width := runewidth.StringWidth(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, runewidth.StringWidth(line), "every line has the same display width: %q", line)
	}
}

func TestPadCell(t *testing.T) {
	assert.Equal(t, "ab  ", padCell("ab", 4, true))
	assert.Equal(t, "  ab", padCell("ab", 4, false))
	assert.Equal(t, "abcdef", padCell("abcdef", 4, true))
}
