package console

import (
	"fmt"
	"sort"

	"github.com/leonelquinteros/gotext"
)

// Command is a registered callback. The returned value is passed through
// to the dispatch caller unchanged; commands with nothing to report return
// nil.
type Command func() any

// AddCommand inserts or overwrites a single registry entry. Any string is
// a usable name; dispatch on an odd name (including "") behaves like any
// other lookup.
func (w *Widget) AddCommand(name string, fn Command) {
	w.mu.Lock()
	w.commands[name] = fn
	w.mu.Unlock()
}

// UpdateCommands merges all entries of cmds into the registry, overwriting
// on name collision. Existing names absent from cmds are kept.
func (w *Widget) UpdateCommands(cmds map[string]Command) {
	w.mu.Lock()
	for name, fn := range cmds {
		w.commands[name] = fn
	}
	w.mu.Unlock()
}

// CommandNames returns the registered command names in alphabetical order.
func (w *Widget) CommandNames() []string {
	w.mu.RLock()
	names := make([]string, 0, len(w.commands))
	for name := range w.commands {
		names = append(names, name)
	}
	w.mu.RUnlock()
	sort.Strings(names)
	return names
}

// ProcessCommand dispatches name with echoing and input clearing enabled.
func (w *Widget) ProcessCommand(name string) (any, bool) {
	return w.Dispatch(name, true, true)
}

// Dispatch runs the named command. The ordering is a contract: when
// clearing, the input buffer is cleared (with a full resize recompute)
// before the registry lookup, so the command itself may repopulate it;
// when echoing, the command name is echoed to the log before the callback
// runs, so anything the command writes lands below its own echo.
//
// An unknown name writes a "No command found" entry to the log and
// reports false; dispatch never fails hard. The callback executes without
// the widget lock held, so commands may freely echo or dispatch again.
func (w *Widget) Dispatch(name string, echoing, clearing bool) (any, bool) {
	if clearing {
		w.ClearText()
	}

	w.mu.RLock()
	fn, ok := w.commands[name]
	w.mu.RUnlock()

	if !ok {
		w.EchoOpts(fmt.Sprintf(gotext.Get("No command found: %s"), name), EchoOptions{Flavour: FlavourWarn})
		return nil, false
	}
	if echoing {
		w.EchoOpts(name, EchoOptions{Prefixed: true})
	}
	return fn(), true
}
