// Package uikit selects the toolkit backend a UI definition is loaded and
// compiled against.
package uikit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/vpy/internal/loader"
	"github.com/vk/vpy/internal/uikit/tkinter"
	"github.com/vk/vpy/internal/widget"
)

// Kit is a toolkit backend.
type Kit interface {
	loader.Resolver

	Name() string
	// Classes lists the widget classes the kit resolves.
	Classes() []string
	// CompileUserClassDecorator generates source for a class decorator
	// that binds a user class to the designed options of w.
	CompileUserClassDecorator(w widget.Widget) (string, error)
}

// ErrUnknownKit is returned by Lookup for names no kit is registered under.
var ErrUnknownKit = errors.New("unknown ui kit")

var kits = map[string]func() Kit{
	tkinter.Name: func() Kit { return tkinter.New() },
}

// Lookup creates the kit registered under name.
func Lookup(name string) (Kit, error) {
	newKit, ok := kits[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' (available: %v)", ErrUnknownKit, name, Names())
	}
	return newKit(), nil
}

// Names returns the names of all available kits, sorted.
func Names() []string {
	names := make([]string, 0, len(kits))
	for name := range kits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
