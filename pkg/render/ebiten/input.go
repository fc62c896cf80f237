package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	"dropconsole/pkg/console"
)

// pageScrollStep is how many log entries PageUp/PageDown move per press.
const pageScrollStep = 10

// Update implements ebiten.Game: the keyboard contract between host and
// widget. The grave-accent hotkey toggles the console; while the console
// is visible it swallows all other input.
func (r *Renderer) Update() error {
	if r.widget == nil {
		return nil
	}

	// Pick up visibility changes made through the widget API since the
	// last frame.
	r.reconcileSlide()

	if inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent) {
		if hidden := r.widget.Toggle(); !hidden {
			r.widget.Focus()
		}
		r.reconcileSlide()
		return nil
	}

	if r.widget.Hidden() {
		return nil
	}

	// Ctrl combinations never reach the input buffer.
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		r.handleZoom()
		return nil
	}

	// Escape clears the input buffer.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		r.widget.ClearText()
		return nil
	}

	// Enter without a modifier submits; Shift+Enter breaks the line.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			r.appendInput("\n")
		} else {
			r.submit()
		}
		return nil
	}

	// PageUp/PageDown scroll the log back and forward.
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		r.widget.ScrollBy(pageScrollStep)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		r.widget.ScrollBy(-pageScrollStep)
		return nil
	}

	if r.backspaceTriggered() {
		r.deleteLastRune()
		return nil
	}

	// Printable characters.
	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		r.appendInput(string(chars))
	}

	return nil
}

// submit reads the buffer and dispatches it as a command name. A non-nil
// result surfaces as a distinct info entry.
func (r *Renderer) submit() {
	name := r.widget.GetText(true, false)
	if name == "" {
		return
	}
	result, ok := r.widget.ProcessCommand(name)
	if ok && result != nil {
		r.widget.EchoOpts(fmt.Sprintf(gotext.Get("Result: %v"), result),
			console.EchoOptions{Flavour: console.FlavourInfo})
	}
}

// appendInput adds text to the buffer and re-fits surface and gutter.
func (r *Renderer) appendInput(s string) {
	r.widget.SetText(r.widget.GetText(false, false) + s)
	r.widget.AutoResizeAll()
}

// deleteLastRune removes the final rune from the buffer.
func (r *Renderer) deleteLastRune() {
	runes := []rune(r.widget.GetText(false, false))
	if len(runes) == 0 {
		return
	}
	r.widget.SetText(string(runes[:len(runes)-1]))
	r.widget.AutoResizeAll()
}

// backspaceTriggered reports a backspace press with key repeat: immediate
// on press, then repeating after a half-second hold.
func (r *Renderer) backspaceTriggered() bool {
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if d == 1 {
		return true
	}
	return d > 30 && d%3 == 0
}

// handleZoom adjusts the console font size with Ctrl+=/Ctrl+- and resets
// it with Ctrl+0.
func (r *Renderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		if r.fontSize < maxFontSize {
			r.fontSize += fontSizeStep
			r.invalidateFontCache()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		if r.fontSize > minFontSize {
			r.fontSize -= fontSizeStep
			r.invalidateFontCache()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		r.fontSize = baseFontSize
		r.invalidateFontCache()
	}
}
