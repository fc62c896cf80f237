package console

import "strings"

// Host is the opaque capability of the environment a widget mounts into.
// The widget never talks to a display directly; it asks its host to
// measure the input surface and to move focus, and renderers read the
// widget state back out when drawing.
type Host interface {
	// MeasureRows reports the natural height, in text rows, of the given
	// input-surface content. Called during the measure step of a resize,
	// after the surface has been collapsed.
	MeasureRows(text string) int

	// RequestFocus asks the host to move keyboard focus to the input
	// surface. Hosts that cannot take focus return false; the widget
	// treats that as a silent no-op.
	RequestFocus() bool
}

// nopHost backs widgets mounted without a real host (tests, headless use).
// Measurement falls back to the line count of the content.
type nopHost struct{}

func (nopHost) MeasureRows(text string) int { return lineCount(text) }
func (nopHost) RequestFocus() bool          { return true }

// lineCount returns the number of newline-delimited segments in s. The
// empty string counts as one line.
func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
