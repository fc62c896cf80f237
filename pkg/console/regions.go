package console

// Flavour is a presentation hint attached to an output entry. The set is
// open: renderers style the flavours they know and fall back to the default
// style for anything else. A flavour never affects widget behaviour.
type Flavour string

const (
	FlavourLog  Flavour = "log"
	FlavourInfo Flavour = "info"
	FlavourWarn Flavour = "warn"
)

// Entry is one rendered line of the output log.
type Entry struct {
	Text    string
	Flavour Flavour
}

// MarkerKind distinguishes the prompt marker from continuation markers in
// the gutter.
type MarkerKind int

const (
	// MarkerPrompt is the first gutter marker, denoting the start of a
	// logical command line.
	MarkerPrompt MarkerKind = iota
	// MarkerContinuation marks every input line after the first.
	MarkerContinuation
)

// Marker is a single gutter marker. Glyph choice is left to the renderer.
type Marker struct {
	Kind MarkerKind
}

// RootRegion is the widget's outermost container. Hiding it hides the
// whole widget.
type RootRegion struct {
	hidden bool
}

// LogRegion holds the output entries, newest last.
type LogRegion struct {
	entries []Entry

	// scrollOffset counts entries back from the newest; 0 means the view
	// is pinned to the newest entry.
	scrollOffset int

	// limit caps retained entries, oldest dropped first. 0 keeps everything.
	limit int
}

// append adds one entry and enforces the retention limit.
func (l *LogRegion) append(e Entry) {
	l.entries = append(l.entries, e)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// clampOffset keeps the scroll offset inside the log.
func (l *LogRegion) clampOffset() {
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
	if n := len(l.entries); l.scrollOffset > n {
		l.scrollOffset = n
	}
}

// InputRegion is the editable text surface of the widget.
type InputRegion struct {
	text string

	// rows is the visible height of the surface in text rows. Recomputed
	// by AutoResizeTextarea; never below 1.
	rows int

	focused bool
}

// GutterRegion is the marker strip rendered beside the input surface. Its
// marker count tracks the input buffer's line count.
type GutterRegion struct {
	markers []Marker
}

// Regions holds typed handles to the four regions a widget builds when it
// is initialized. Handles stay valid until the next Init.
type Regions struct {
	Root   *RootRegion
	Log    *LogRegion
	Gutter *GutterRegion
	Input  *InputRegion
}

// buildRegions constructs the widget's visual structure: a root container
// holding the output log and an input row made of the gutter and the text
// surface. Returning typed handles keeps the structure statically known
// instead of being re-queried from a generic tree.
func buildRegions() Regions {
	return Regions{
		Root:   &RootRegion{},
		Log:    &LogRegion{},
		Gutter: &GutterRegion{markers: makeMarkers(1)},
		Input:  &InputRegion{rows: 1},
	}
}

// makeMarkers returns n gutter markers, the first a prompt marker and the
// rest continuation markers.
func makeMarkers(n int) []Marker {
	if n < 1 {
		n = 1
	}
	markers := make([]Marker, n)
	for i := 1; i < n; i++ {
		markers[i].Kind = MarkerContinuation
	}
	return markers
}
