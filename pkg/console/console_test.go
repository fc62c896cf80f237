// Package console tests the widget state machine: mounting, visibility,
// output log behaviour, and focus handling.
package console

import (
	"strings"
	"testing"
)

func TestInit_BindsTypedRegionHandles(t *testing.T) {
	w := New()
	w.Init(nil)
	regions := w.Regions()
	if regions.Root == nil || regions.Log == nil || regions.Gutter == nil || regions.Input == nil {
		t.Fatalf("Init left nil region handles: %+v", regions)
	}
	if got := len(regions.Gutter.markers); got != 1 {
		t.Errorf("fresh gutter has %d markers, want 1", got)
	}
	if regions.Root.hidden {
		t.Error("freshly mounted widget should be visible")
	}
}

func TestInit_ResetsRegistry(t *testing.T) {
	w := New()
	w.AddCommand("ping", func() any { return "pong" })
	w.Init(nil)
	if _, ok := w.Dispatch("ping", false, false); ok {
		t.Error("Init did not reset the command registry")
	}
}

func TestToggle_FlipAndForce(t *testing.T) {
	w := New()
	w.Init(nil)
	if got := w.Toggle(); got != true {
		t.Errorf("Toggle() on visible widget = %v, want true (now hidden)", got)
	}
	if got := w.Toggle(); got != false {
		t.Errorf("second Toggle() = %v, want false (visible again)", got)
	}
	for _, prior := range []bool{true, false} {
		w.Toggle(prior)
		if got := w.Toggle(true); got != true {
			t.Errorf("Toggle(true) after hidden=%v returned %v, want true", prior, got)
		}
	}
	if w.Toggle(false) != false || w.Hidden() {
		t.Error("Toggle(false) did not leave the widget visible")
	}
}

func TestEcho_BlankTextRendersAsNonBreakingSpace(t *testing.T) {
	w := New()
	for _, text := range []string{"", "   ", "\t\n "} {
		w.ClearOutputs()
		w.Echo(text)
		entries := w.Entries()
		if len(entries) != 1 {
			t.Fatalf("Echo(%q) produced %d entries, want 1", text, len(entries))
		}
		if entries[0].Text != " " {
			t.Errorf("Echo(%q) entry text = %q, want a single non-breaking space", text, entries[0].Text)
		}
	}
}

func TestEcho_DefaultsAndOptions(t *testing.T) {
	w := New()
	w.Echo("plain")
	w.EchoOpts("warned", EchoOptions{Flavour: FlavourWarn})
	w.EchoOpts("run", EchoOptions{Prefixed: true})
	entries := w.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Flavour != FlavourLog {
		t.Errorf("default flavour = %q, want %q", entries[0].Flavour, FlavourLog)
	}
	if entries[1].Flavour != FlavourWarn {
		t.Errorf("flavour = %q, want %q", entries[1].Flavour, FlavourWarn)
	}
	if entries[2].Text != PromptPrefix+"run" {
		t.Errorf("prefixed entry = %q, want %q", entries[2].Text, PromptPrefix+"run")
	}
}

func TestEcho_LiteralContent(t *testing.T) {
	w := New()
	raw := "<b>{TITLE} & $HOME"
	w.Echo(raw)
	if got := w.Entries()[0].Text; got != raw {
		t.Errorf("entry text = %q, want the literal input %q", got, raw)
	}
}

func TestEcho_ScrollBehaviour(t *testing.T) {
	w := New()
	for i := 0; i < 10; i++ {
		w.Echo("line")
	}
	w.ScrollBy(5)
	if got := w.ScrollOffset(); got != 5 {
		t.Fatalf("ScrollBy(5): offset = %d, want 5", got)
	}

	// NoScroll leaves the position untouched.
	w.EchoOpts("batched", EchoOptions{NoScroll: true})
	if got := w.ScrollOffset(); got != 5 {
		t.Errorf("NoScroll echo moved offset to %d, want 5", got)
	}

	// A scrolling echo pins the view back to the newest entry.
	w.Echo("latest")
	if got := w.ScrollOffset(); got != 0 {
		t.Errorf("scrolling echo left offset at %d, want 0", got)
	}

	w.ScrollBy(1000)
	if got := w.ScrollOffset(); got > len(w.Entries()) {
		t.Errorf("offset %d not clamped to log length %d", got, len(w.Entries()))
	}
	w.ScrollBy(-1000)
	if got := w.ScrollOffset(); got != 0 {
		t.Errorf("offset %d after scrolling past newest, want 0", got)
	}
}

func TestClearOutputs_EmptiesLog(t *testing.T) {
	w := New()
	w.Echo("one")
	w.Echo("two")
	w.ClearOutputs()
	if got := len(w.Entries()); got != 0 {
		t.Errorf("log has %d entries after ClearOutputs, want 0", got)
	}
}

func TestSetLogLimit_DropsOldest(t *testing.T) {
	w := New()
	w.SetLogLimit(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		w.Echo(s)
	}
	entries := w.Entries()
	if len(entries) != 3 {
		t.Fatalf("log has %d entries, want 3", len(entries))
	}
	var texts []string
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	if got := strings.Join(texts, ""); got != "cde" {
		t.Errorf("retained entries = %q, want %q", got, "cde")
	}
}

func TestFocus_SetsFocusOnce(t *testing.T) {
	host := &recordingHost{acceptFocus: true}
	w := New()
	w.Init(host)
	w.Focus()
	w.Focus()
	if !w.Focused() {
		t.Error("widget not focused after Focus")
	}
	if host.focusRequests != 1 {
		t.Errorf("host saw %d focus requests, want 1 (second Focus is a no-op)", host.focusRequests)
	}
}

func TestFocus_HostRefusal(t *testing.T) {
	host := &recordingHost{acceptFocus: false}
	w := New()
	w.Init(host)
	w.Focus()
	if w.Focused() {
		t.Error("widget claims focus although the host refused it")
	}
}

func TestToggle_HidingReleasesFocus(t *testing.T) {
	host := &recordingHost{acceptFocus: true}
	w := New()
	w.Init(host)
	w.Focus()
	w.Toggle(true)
	if w.Focused() {
		t.Error("widget still focused after hiding")
	}
	w.Toggle(false)
	w.Focus()
	if !w.Focused() {
		t.Error("widget not focused after showing and refocusing")
	}
	if host.focusRequests != 2 {
		t.Errorf("host saw %d focus requests, want 2 (Focus works again after a hide)", host.focusRequests)
	}
}

func TestSnapshot_IsAConsistentCopy(t *testing.T) {
	w := New()
	w.Echo("hello")
	w.SetText("a\nb")
	w.AutoResizeAll()
	snap := w.Snapshot()

	w.ClearOutputs()
	w.ClearText()

	if len(snap.Entries) != 1 || snap.Entries[0].Text != "hello" {
		t.Errorf("snapshot entries mutated: %+v", snap.Entries)
	}
	if snap.Text != "a\nb" || len(snap.Markers) != 2 || snap.Rows != 2 {
		t.Errorf("snapshot does not reflect pre-clear state: %+v", snap)
	}
}

// recordingHost records the calls a widget makes into its host.
type recordingHost struct {
	acceptFocus   bool
	focusRequests int
	measured      []string
}

func (h *recordingHost) MeasureRows(text string) int {
	h.measured = append(h.measured, text)
	return strings.Count(text, "\n") + 1
}

func (h *recordingHost) RequestFocus() bool {
	h.focusRequests++
	return h.acceptFocus
}
