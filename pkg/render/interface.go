// Package render defines the contract between a console widget and the
// display backends that host it.
package render

import "dropconsole/pkg/console"

// Renderer is a display backend a console widget mounts into.
// Implementations include the Ebiten graphical host and the ANSI terminal
// host. A renderer doubles as the widget's console.Host capability, so the
// usual wiring is:
//
//	w := console.New()
//	r := ebiten.New()
//	r.Init()
//	w.Init(r)
//	r.Run(w)
//
// Renderers are explicitly constructed and passed around; there is no
// package-level current renderer.
type Renderer interface {
	console.Host

	// Init prepares the backend: colors, fonts, window state.
	Init() error

	// RenderFrame submits the widget whose state the backend should draw.
	// Graphical backends draw it on their own cadence; terminal backends
	// print a frame immediately.
	RenderFrame(w *console.Widget)

	// Run enters the backend's event loop with the widget wired to the
	// keyboard, blocking until the host shuts down.
	Run(w *console.Widget) error
}
