package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getMonoFontFace returns a cached monospace face at the current font
// size. The console is drawn entirely in monospace so the gutter column
// and input lines align.
func (r *Renderer) getMonoFontFace() *text.GoTextFace {
	if r.cachedMonoFace == nil || r.cachedFontSize != r.fontSize {
		r.cachedFontSize = r.fontSize
		r.cachedMonoFace = &text.GoTextFace{
			Source: r.monoFontSource,
			Size:   r.fontSize,
		}
	}
	return r.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif face used for the idle hint
// text outside the console.
func (r *Renderer) getSansFontFace() *text.GoTextFace {
	if r.cachedSansFace == nil || r.cachedFontSize != r.fontSize {
		r.cachedFontSize = r.fontSize
		r.cachedSansFace = &text.GoTextFace{
			Source: r.sansFontSource,
			Size:   r.fontSize,
		}
	}
	return r.cachedSansFace
}

// invalidateFontCache clears cached faces (call when the font size changes)
func (r *Renderer) invalidateFontCache() {
	r.cachedMonoFace = nil
	r.cachedSansFace = nil
}
