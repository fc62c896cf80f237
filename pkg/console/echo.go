package console

import "strings"

// PromptPrefix is the marker prepended to echoed command lines.
const PromptPrefix = "$  "

// nbsp keeps blank echoes from rendering as zero-height lines.
const nbsp = " "

// EchoOptions adjusts a single Echo call. The zero value gives the default
// behaviour: log flavour, scroll to the newest entry, no prompt prefix.
type EchoOptions struct {
	// Flavour is the style category of the entry; empty means FlavourLog.
	Flavour Flavour

	// NoScroll leaves the scroll position untouched. Callers batching
	// several echoes set this and call ScrollToNewest once afterwards.
	NoScroll bool

	// Prefixed prepends PromptPrefix to the text.
	Prefixed bool
}

// Echo appends text to the output log with default options.
func (w *Widget) Echo(text string) {
	w.EchoOpts(text, EchoOptions{})
}

// EchoOpts appends one entry to the output log. The text is carried as
// literal content; renderers must draw it as plain text, never interpret
// it as markup. Empty or whitespace-only text becomes a single
// non-breaking space so the rendered line keeps its height.
func (w *Widget) EchoOpts(text string, opts EchoOptions) {
	if strings.TrimSpace(text) == "" {
		text = nbsp
	}
	if opts.Prefixed {
		text = PromptPrefix + text
	}
	flavour := opts.Flavour
	if flavour == "" {
		flavour = FlavourLog
	}

	w.mu.Lock()
	w.regions.Log.append(Entry{Text: text, Flavour: flavour})
	if !opts.NoScroll {
		w.regions.Log.scrollOffset = 0
	}
	w.mu.Unlock()
}

// ClearOutputs removes every entry from the output log. Irreversible.
func (w *Widget) ClearOutputs() {
	w.mu.Lock()
	w.regions.Log.entries = nil
	w.regions.Log.scrollOffset = 0
	w.mu.Unlock()
}

// Entries returns a copy of the current output log, oldest first.
func (w *Widget) Entries() []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	entries := make([]Entry, len(w.regions.Log.entries))
	copy(entries, w.regions.Log.entries)
	return entries
}

// ScrollToNewest pins the log view to the newest entry.
func (w *Widget) ScrollToNewest() {
	w.mu.Lock()
	w.regions.Log.scrollOffset = 0
	w.mu.Unlock()
}

// ScrollBy moves the log view delta entries towards older output
// (negative values scroll back towards the newest). The offset is clamped
// to the log.
func (w *Widget) ScrollBy(delta int) {
	w.mu.Lock()
	w.regions.Log.scrollOffset += delta
	w.regions.Log.clampOffset()
	w.mu.Unlock()
}

// ScrollOffset reports how many entries back from the newest the view
// currently sits; 0 means pinned to the newest.
func (w *Widget) ScrollOffset() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.regions.Log.scrollOffset
}

// SetLogLimit caps the number of retained log entries, dropping the oldest
// beyond the cap. 0 keeps everything.
func (w *Widget) SetLogLimit(n int) {
	w.mu.Lock()
	w.regions.Log.limit = n
	if n > 0 && len(w.regions.Log.entries) > n {
		w.regions.Log.entries = w.regions.Log.entries[len(w.regions.Log.entries)-n:]
	}
	w.regions.Log.clampOffset()
	w.mu.Unlock()
}
