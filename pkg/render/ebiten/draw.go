package ebiten

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"dropconsole/pkg/console"
)

// Gutter glyphs.
const (
	promptGlyph       = "$"
	continuationGlyph = "·"
)

// Draw implements ebiten.Game: backdrop, idle hint, then the console
// overlay at the current slide position.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	if r.widget == nil {
		return
	}

	snap := r.widget.Snapshot()
	progress := r.updateSlide()

	if snap.Hidden && progress <= 0 {
		r.drawHint(screen)
		return
	}
	if progress <= 0 {
		return
	}
	r.drawConsole(screen, snap, progress)
}

// drawHint shows how to open the console while it is hidden.
func (r *Renderer) drawHint(screen *ebiten.Image) {
	face := r.getSansFontFace()
	op := &text.DrawOptions{}
	op.GeoM.Translate(paddingX, paddingY+face.Size)
	op.ColorScale.ScaleWithColor(colorHint)
	text.Draw(screen, gotext.Get("Press ` to open the console"), face, op)
}

// flavourColor maps a style category to its text color. Unknown flavours
// draw in the default text color.
func flavourColor(f console.Flavour) color.RGBA {
	switch f {
	case console.FlavourInfo:
		return colorInfo
	case console.FlavourWarn:
		return colorWarn
	default:
		return colorText
	}
}

// drawConsole paints the overlay: output log on top, gutter plus input
// lines at the bottom, a top border rule, everything faded by the slide
// progress.
func (r *Renderer) drawConsole(screen *ebiten.Image, snap console.Snapshot, progress float64) {
	screenWidth := screen.Bounds().Dx()
	screenHeight := screen.Bounds().Dy()

	consoleHeight := int(float64(screenHeight) * consoleHeightShare * progress)
	consoleY := screenHeight - consoleHeight
	if consoleHeight < 20 {
		return
	}

	bg := colorConsoleBg
	bg.A = uint8(float64(bg.A) * progress)
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(screenWidth), float32(consoleHeight), bg, false)
	border := colorBorder
	border.A = uint8(255 * progress)
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(screenWidth), 2, border, false)

	face := r.getMonoFontFace()
	if face == nil {
		return
	}
	lineHeight := int(r.fontSize) + 6

	// Input pane sits at the bottom: one row per marker, gutter column on
	// the left.
	gutterWidth, _ := text.Measure(promptGlyph, face, 0)
	inputX := paddingX + gutterWidth + 8
	inputHeight := snap.Rows * lineHeight
	inputY := consoleY + consoleHeight - paddingY - inputHeight

	lines := strings.Split(snap.Text, "\n")
	for i := 0; i < snap.Rows && i < len(lines); i++ {
		y := float64(inputY + i*lineHeight)

		glyph := promptGlyph
		markColor := colorPromptMark
		if i < len(snap.Markers) && snap.Markers[i].Kind == console.MarkerContinuation {
			glyph = continuationGlyph
			markColor = colorContinuMark
		}
		r.drawLine(screen, glyph, paddingX, y, markColor, progress, face)

		line := lines[i]
		if i == len(lines)-1 && snap.Focused && blinkOn() {
			line += "_"
		}
		r.drawLine(screen, line, inputX, y, colorInput, progress, face)
	}

	// Log pane fills the space above the input, newest at the bottom,
	// shifted back by the scroll offset.
	linesToShow := (consoleHeight - paddingY*2 - inputHeight - lineHeight) / lineHeight
	if linesToShow < 1 || len(snap.Entries) == 0 {
		return
	}
	end := len(snap.Entries) - snap.ScrollOffset
	if end < 0 {
		end = 0
	}
	start := end - linesToShow
	if start < 0 {
		start = 0
	}
	y := float64(consoleY + paddingY)
	for _, entry := range snap.Entries[start:end] {
		if int(y)+lineHeight > inputY {
			break
		}
		r.drawLine(screen, entry.Text, paddingX, y, flavourColor(entry.Flavour), progress, face)
		y += float64(lineHeight)
	}
}

// drawLine draws one line of literal text, alpha-scaled by the slide
// progress. text/v2 positions at the baseline, so the face size is added
// to the y coordinate.
func (r *Renderer) drawLine(screen *ebiten.Image, s string, x, y float64, col color.RGBA, progress float64, face *text.GoTextFace) {
	col.A = uint8(float64(col.A) * progress)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y+face.Size)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

// blinkOn drives the input cursor blink at 2 Hz.
func blinkOn() bool {
	return int(time.Now().UnixMilli()/500)%2 == 0
}
