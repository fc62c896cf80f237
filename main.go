// Command dropconsole runs a demo host around the embeddable console
// widget: an Ebiten window (or a plain terminal with -renderer=tui) with a
// small set of registered commands.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"dropconsole/pkg/console"
	"dropconsole/pkg/render"
	ebitenrender "dropconsole/pkg/render/ebiten"
	"dropconsole/pkg/render/tui"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

func initGettext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

// registerCommands wires the demo command set into the widget.
func registerCommands(w *console.Widget) {
	w.UpdateCommands(map[string]console.Command{
		"ping": func() any {
			return "pong"
		},
		"version": func() any {
			return Version
		},
		"time": func() any {
			return time.Now().Format(time.RFC1123)
		},
		"clear": func() any {
			w.ClearOutputs()
			return nil
		},
		"hide": func() any {
			w.Toggle(true)
			return nil
		},
	})
	// help batches one echo per command, then scrolls once.
	w.AddCommand("help", func() any {
		w.EchoOpts(gotext.Get("Commands:"), console.EchoOptions{NoScroll: true})
		for _, name := range w.CommandNames() {
			w.EchoOpts("  "+name, console.EchoOptions{NoScroll: true})
		}
		w.ScrollToNewest()
		return nil
	})
}

func main() {
	rendererName := flag.String("renderer", "ebiten", "display backend: ebiten or tui")
	startHidden := flag.Bool("hidden", false, "start with the console hidden")
	logLimit := flag.Int("loglimit", 500, "max retained output entries (0 = unlimited)")
	flag.Parse()

	initGettext()

	var r render.Renderer
	switch *rendererName {
	case "ebiten":
		r = ebitenrender.New()
	case "tui":
		r = tui.New()
	default:
		log.Fatalf("unknown renderer %q (want ebiten or tui)", *rendererName)
	}
	if err := r.Init(); err != nil {
		log.Fatalf("cannot initialize %s renderer: %v", *rendererName, err)
	}

	w := console.New()
	w.Init(r)
	w.SetLogLimit(*logLimit)
	registerCommands(w)

	w.EchoOpts(fmt.Sprintf(gotext.Get("dropconsole %s"), Version),
		console.EchoOptions{Flavour: console.FlavourInfo})
	w.Echo(gotext.Get("Type 'help' for commands."))

	if *startHidden {
		w.Toggle(true)
	} else {
		w.Focus()
	}

	if err := r.Run(w); err != nil {
		log.Fatalf("renderer exited: %v", err)
	}
}
