package ebiten

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"dropconsole/pkg/console"
)

// Renderer is the Ebiten-based graphical host for a console widget. It
// implements ebiten.Game, render.Renderer, and console.Host: Update runs
// the keyboard contract, Draw paints the drop-down overlay from a widget
// snapshot.
type Renderer struct {
	windowWidth  int
	windowHeight int
	windowTitle  string

	widget *console.Widget

	monoFontSource *text.GoTextFaceSource
	sansFontSource *text.GoTextFaceSource
	fontSize       float64
	cachedFontSize float64
	cachedMonoFace *text.GoTextFace
	cachedSansFace *text.GoTextFace

	// Slide animation for toggle. The widget's hidden bit flips
	// immediately; the overlay slides over slideDuration ms. Touched only
	// from Update/Draw on the Ebiten loop goroutine.
	slideTarget    bool // true = sliding open
	slideAnimating bool
	slideStart     int64
	slideProgress  float64 // 0.0 closed .. 1.0 open
}

// New returns an Ebiten renderer with default window settings.
func New() *Renderer {
	return &Renderer{
		windowWidth:  960,
		windowHeight: 600,
		windowTitle:  "dropconsole",
		fontSize:     baseFontSize,
	}
}

// Init loads the embedded font sources.
func (r *Renderer) Init() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("cannot load monospace font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("cannot load sans font: %w", err)
	}
	r.monoFontSource = mono
	r.sansFontSource = sans
	return nil
}

// RenderFrame submits the widget to draw. Ebiten paints on its own
// cadence, so this only swaps the source of frame state and settles the
// overlay at the widget's current visibility without animating.
func (r *Renderer) RenderFrame(w *console.Widget) {
	r.widget = w
	hidden := w.Hidden()
	r.slideTarget = !hidden
	r.slideAnimating = false
	if hidden {
		r.slideProgress = 0.0
	} else {
		r.slideProgress = 1.0
	}
}

// Run opens the window and blocks in the Ebiten event loop until the
// window closes.
func (r *Renderer) Run(w *console.Widget) error {
	r.RenderFrame(w)
	ebiten.SetWindowSize(r.windowWidth, r.windowHeight)
	ebiten.SetWindowTitle(r.windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(r)
}

// Layout implements ebiten.Game.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// MeasureRows implements console.Host. The input surface draws monospace
// without soft wrapping, so the natural height is the plain line count.
func (r *Renderer) MeasureRows(s string) int {
	return strings.Count(s, "\n") + 1
}

// RequestFocus implements console.Host. The overlay always accepts
// keyboard focus while the window is open.
func (r *Renderer) RequestFocus() bool { return true }

// startSlide begins the open or close animation towards the given state.
func (r *Renderer) startSlide(open bool) {
	r.slideTarget = open
	r.slideAnimating = true
	r.slideStart = time.Now().UnixMilli()
}

// reconcileSlide starts a slide whenever the widget's hidden bit changed
// outside the hotkey path (a registered command calling Toggle, for
// example). Without this the overlay would stay painted while the widget
// already considers itself hidden.
func (r *Renderer) reconcileSlide() {
	open := !r.widget.Hidden()
	if open != r.slideTarget {
		r.startSlide(open)
	}
}

// updateSlide advances the animation and returns the current progress.
func (r *Renderer) updateSlide() float64 {
	if !r.slideAnimating {
		return r.slideProgress
	}
	elapsed := time.Now().UnixMilli() - r.slideStart
	if elapsed >= slideDuration {
		r.slideAnimating = false
		if r.slideTarget {
			r.slideProgress = 1.0
		} else {
			r.slideProgress = 0.0
		}
		return r.slideProgress
	}
	eased := easeInOut(float64(elapsed) / float64(slideDuration))
	if r.slideTarget {
		r.slideProgress = eased
	} else {
		r.slideProgress = 1.0 - eased
	}
	return r.slideProgress
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
