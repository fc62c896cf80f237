// Package ebiten hosts a console widget inside an Ebiten window: a
// bottom-anchored drop-down overlay with slide animation, drawn from a
// widget snapshot each frame.
package ebiten

import "image/color"

// Overlay palette.
var (
	colorBackdrop    = color.RGBA{26, 26, 46, 255}   // window background
	colorConsoleBg   = color.RGBA{0, 0, 0, 220}      // console overlay fill
	colorBorder      = color.RGBA{100, 100, 150, 255}
	colorText        = color.RGBA{200, 210, 245, 255} // default log text
	colorInfo        = color.RGBA{140, 220, 255, 255}
	colorWarn        = color.RGBA{255, 220, 100, 255}
	colorInput       = color.RGBA{255, 255, 255, 255}
	colorPromptMark  = color.RGBA{0, 255, 100, 255}
	colorContinuMark = color.RGBA{120, 130, 180, 255}
	colorHint        = color.RGBA{120, 130, 180, 255}
)

const (
	// consoleHeightShare is the fraction of the window the open console
	// covers.
	consoleHeightShare = 0.4

	// slideDuration is the open/close animation length in milliseconds.
	slideDuration = 200

	paddingX = 10
	paddingY = 10

	baseFontSize = 14.0
	minFontSize  = 8.0
	maxFontSize  = 32.0
	fontSizeStep = 2.0
)
