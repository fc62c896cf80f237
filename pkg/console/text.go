package console

import "strings"

// GetText returns the input buffer contents, optionally trimmed of
// leading/trailing whitespace and/or folded to lowercase. The buffer
// itself is never modified by either transform.
func (w *Widget) GetText(trimming, lowercase bool) string {
	w.mu.RLock()
	s := w.regions.Input.text
	w.mu.RUnlock()
	if trimming {
		s = strings.TrimSpace(s)
	}
	if lowercase {
		s = strings.ToLower(s)
	}
	return s
}

// SetText replaces the input buffer verbatim. It does not resize; callers
// that need the surface and gutter to track the new content follow up
// with AutoResizeAll.
func (w *Widget) SetText(text string) {
	w.mu.Lock()
	w.regions.Input.text = text
	w.mu.Unlock()
}

// ClearText empties the input buffer and recomputes surface height and
// gutter.
func (w *Widget) ClearText() {
	w.SetText("")
	w.AutoResizeAll()
}

// AutoResizeTextarea recomputes the input surface height to exactly fit
// its content. The surface is collapsed to one row first and only then
// measured; measuring against the old height never lets the surface
// shrink back after deletions.
func (w *Widget) AutoResizeTextarea() {
	w.mu.Lock()
	input := w.regions.Input
	input.rows = 1 // collapse
	text := input.text
	host := w.host
	w.mu.Unlock()

	rows := host.MeasureRows(text)
	if rows < 1 {
		rows = 1
	}

	w.mu.Lock()
	input.rows = rows
	w.mu.Unlock()
}

// AutoResizeGutter rebuilds the gutter markers from the input buffer's
// line count: one marker per line, minimum one, the first a prompt marker
// and the rest continuation markers.
func (w *Widget) AutoResizeGutter() {
	w.mu.Lock()
	w.regions.Gutter.markers = makeMarkers(lineCount(w.regions.Input.text))
	w.mu.Unlock()
}

// AutoResizeAll resizes the text surface, then the gutter.
func (w *Widget) AutoResizeAll() {
	w.AutoResizeTextarea()
	w.AutoResizeGutter()
}

// InputRows reports the current visible height of the input surface in
// rows.
func (w *Widget) InputRows() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.regions.Input.rows
}

// Markers returns a copy of the current gutter markers.
func (w *Widget) Markers() []Marker {
	w.mu.RLock()
	defer w.mu.RUnlock()
	markers := make([]Marker, len(w.regions.Gutter.markers))
	copy(markers, w.regions.Gutter.markers)
	return markers
}
