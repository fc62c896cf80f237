// Package console implements an embeddable command console widget: a
// scrollable output log, a multi-line input buffer with a line-marker
// gutter, and a registry mapping command names to callbacks. The widget
// owns its state only; drawing and keyboard wiring live in the renderer
// packages under pkg/render.
package console

import "sync"

// Widget is a console instance. Construct it with New, mount it with Init,
// and pass it explicitly to whatever wiring needs it; there is no
// package-level instance.
type Widget struct {
	mu       sync.RWMutex
	host     Host
	regions  Regions
	commands map[string]Command
}

// New returns an unmounted widget. It is usable immediately (with
// line-count measurement and no focus target); Init attaches it to a host.
func New() *Widget {
	return &Widget{
		host:     nopHost{},
		regions:  buildRegions(),
		commands: make(map[string]Command),
	}
}

// Init mounts the widget into host: it builds a fresh region structure,
// binds the typed handles, and resets the command registry to empty.
// A nil host mounts the widget headless. Callers are expected to call
// Init exactly once; a second call discards the previous structure and
// registry.
func (w *Widget) Init(host Host) {
	if host == nil {
		host = nopHost{}
	}
	w.mu.Lock()
	w.host = host
	w.regions = buildRegions()
	w.commands = make(map[string]Command)
	w.mu.Unlock()
}

// Regions returns the typed handles to the widget's visual structure.
func (w *Widget) Regions() Regions {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.regions
}

// Toggle flips the widget's hidden state, or forces it when a boolean is
// supplied. Returns the resulting state (true = now hidden).
func (w *Widget) Toggle(force ...bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	root := w.regions.Root
	if len(force) > 0 {
		root.hidden = force[0]
	} else {
		root.hidden = !root.hidden
	}
	if root.hidden {
		// Hiding releases keyboard focus so a later Focus call
		// re-requests it from the host.
		w.regions.Input.focused = false
	}
	return root.hidden
}

// Hidden reports whether the widget is currently hidden.
func (w *Widget) Hidden() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.regions.Root.hidden
}

// Focus moves keyboard focus to the input surface. Already-focused widgets
// and hosts that refuse focus are silent no-ops.
func (w *Widget) Focus() {
	w.mu.RLock()
	input := w.regions.Input
	focused := input.focused
	host := w.host
	w.mu.RUnlock()
	if focused {
		return
	}
	if host.RequestFocus() {
		w.mu.Lock()
		input.focused = true
		w.mu.Unlock()
	}
}

// Focused reports whether the input surface holds keyboard focus.
func (w *Widget) Focused() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.regions.Input.focused
}

// Snapshot is a consistent copy of everything a renderer needs for one
// frame.
type Snapshot struct {
	Hidden       bool
	Entries      []Entry
	ScrollOffset int
	Text         string
	Rows         int
	Markers      []Marker
	Focused      bool
}

// Snapshot copies the widget state under a single read lock so a frame
// never mixes state from before and after a command ran.
func (w *Widget) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	snap := Snapshot{
		Hidden:       w.regions.Root.hidden,
		Entries:      make([]Entry, len(w.regions.Log.entries)),
		ScrollOffset: w.regions.Log.scrollOffset,
		Text:         w.regions.Input.text,
		Rows:         w.regions.Input.rows,
		Markers:      make([]Marker, len(w.regions.Gutter.markers)),
		Focused:      w.regions.Input.focused,
	}
	copy(snap.Entries, w.regions.Log.entries)
	copy(snap.Markers, w.regions.Gutter.markers)
	return snap
}
