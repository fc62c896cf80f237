// Package tui renders a console widget to an ANSI terminal and drives it
// line-by-line from stdin. It is the cooked-mode counterpart of the Ebiten
// host: no overlay, no hotkeys beyond a toggle line, one frame printed per
// interaction.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"dropconsole/pkg/console"
)

// Gutter glyphs.
const (
	promptGlyph       = "$"
	continuationGlyph = "·"
)

// toggleLine is the input line that stands in for the visibility hotkey a
// graphical host would bind.
const toggleLine = "`"

// Renderer is the terminal-based console host.
type Renderer struct {
	out io.Writer
	in  io.Reader

	styles        map[console.Flavour]color.Style
	gutterStyle   color.Style
	promptStyle   color.Style
	borderStyle   color.Style
	warnedUnknown mapset.Set[console.Flavour]
}

// New returns a terminal renderer bound to stdin/stdout.
func New() *Renderer {
	return &Renderer{out: os.Stdout, in: os.Stdin}
}

// Init initializes the flavour style table.
func (r *Renderer) Init() error {
	r.styles = map[console.Flavour]color.Style{
		console.FlavourLog:  {color.FgDefault},
		console.FlavourInfo: {color.FgCyan},
		console.FlavourWarn: {color.FgYellow, color.OpBold},
	}
	r.gutterStyle = color.Style{color.FgGray}
	r.promptStyle = color.Style{color.FgGreen, color.OpBold}
	r.borderStyle = color.Style{color.FgGray}
	r.warnedUnknown = mapset.New[console.Flavour]()
	return nil
}

// styleFor maps a flavour to its style. Unknown flavours get the default
// log style; each one is reported once.
func (r *Renderer) styleFor(f console.Flavour) color.Style {
	if style, ok := r.styles[f]; ok {
		return style
	}
	if !r.warnedUnknown.Has(f) {
		r.warnedUnknown.Put(f)
		log.Printf("unknown flavour %q, using default style", f)
	}
	return r.styles[console.FlavourLog]
}

// RenderFrame prints the widget's current state: output log on top, then
// the gutter-marked input lines. A hidden widget prints nothing.
func (r *Renderer) RenderFrame(w *console.Widget) {
	snap := w.Snapshot()
	if snap.Hidden {
		return
	}

	width, height := terminalSize()
	fmt.Fprintln(r.out, r.borderStyle.Sprint(strings.Repeat("─", width)))

	// Log pane: newest entries at the bottom, shifted back by the scroll
	// offset. Budget leaves room for the border lines and the input rows.
	budget := height - 3 - snap.Rows
	if budget < 1 {
		budget = 1
	}
	end := len(snap.Entries) - snap.ScrollOffset
	if end < 0 {
		end = 0
	}
	// The budget counts display lines, not entries: an entry with embedded
	// newlines prints as several lines. An oversized first entry is still
	// shown rather than printing nothing at all.
	start := end
	used := 0
	for start > 0 {
		n := strings.Count(snap.Entries[start-1].Text, "\n") + 1
		if used+n > budget && used > 0 {
			break
		}
		used += n
		start--
	}
	for _, entry := range snap.Entries[start:end] {
		fmt.Fprintln(r.out, r.styleFor(entry.Flavour).Sprint(entry.Text))
	}

	// Input pane: one gutter marker per line.
	lines := strings.Split(snap.Text, "\n")
	for i, line := range lines {
		glyph := r.promptStyle.Sprint(promptGlyph)
		if i > 0 && i < len(snap.Markers) && snap.Markers[i].Kind == console.MarkerContinuation {
			glyph = r.gutterStyle.Sprint(continuationGlyph)
		}
		fmt.Fprintf(r.out, "%s %s\n", glyph, line)
	}
	fmt.Fprintln(r.out, r.borderStyle.Sprint(strings.Repeat("─", width)))
}

// Run reads lines from stdin and applies the keyboard contract in cooked
// mode: a non-empty line is placed in the input buffer and dispatched as a
// command name, a "`" line toggles visibility, EOF exits. Non-nil command
// results surface as an info entry.
func (r *Renderer) Run(w *console.Widget) error {
	r.RenderFrame(w)
	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == toggleLine:
			if hidden := w.Toggle(); !hidden {
				w.Focus()
			}
		case strings.TrimSpace(line) == "":
			// Just repaint.
		default:
			w.SetText(line)
			w.AutoResizeAll()
			name := w.GetText(true, false)
			if result, ok := w.ProcessCommand(name); ok && result != nil {
				w.EchoOpts(fmt.Sprintf(gotext.Get("Result: %v"), result),
					console.EchoOptions{Flavour: console.FlavourInfo})
			}
		}
		r.RenderFrame(w)
	}
	return scanner.Err()
}

// MeasureRows implements console.Host: the natural height of the input
// content with soft wrapping at the terminal width, gutter column
// excluded.
func (r *Renderer) MeasureRows(text string) int {
	width, _ := terminalSize()
	avail := width - 2 // gutter glyph and its trailing space
	if avail < 1 {
		avail = 1
	}
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		n := len([]rune(line))
		if n == 0 {
			rows++
			continue
		}
		rows += (n + avail - 1) / avail
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// RequestFocus implements console.Host. A line-oriented terminal always
// reads into the widget, so focus always succeeds.
func (r *Renderer) RequestFocus() bool { return true }
