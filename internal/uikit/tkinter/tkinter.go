// Package tkinter is the Tk toolkit backend. It resolves the widget classes
// Tk supports and generates the Python class decorators that bind a user
// class to its designed options.
package tkinter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/vk/vpy/internal/registry"
	"github.com/vk/vpy/internal/widget"
)

// Name is the name the kit is selected by.
const Name = "tkinter"

// Module registers the widget classes Tk supports.
type Module struct{}

// Register implements registry.Module.
func (Module) Register(r *registry.Registry) {
	r.RegisterAll(widget.ButtonType, widget.FrameType)
}

// Kit resolves widget classes and compiles decorators for Tk.
type Kit struct {
	registry *registry.Registry
}

// New creates a Tk kit.
func New() *Kit {
	return &Kit{registry: registry.New(Module{})}
}

// Name returns "tkinter".
func (k *Kit) Name() string { return Name }

// Resolve implements loader.Resolver.
func (k *Kit) Resolve(class string) (*widget.Type, bool) {
	return k.registry.Resolve(class)
}

// Classes lists the supported widget classes.
func (k *Kit) Classes() []string {
	return k.registry.Classes()
}

var decoratorTmpl = template.Must(template.New("decorator").Funcs(template.FuncMap{
	"dict": pyDict,
}).Parse(`import tkinter as tk
import tkinter.ttk as ttk
from typing import TypeVar

_CT = TypeVar("_CT", bound=tk.Misc)

def decorate_class(cls: _CT) -> _CT:
    def _new_init(self, parent: tk.Misc|None = None, **options):
        config = {{ dict .Options }}
        config.update(options)
        super(cls, self).__init__(parent, **config)

    cls.__init__ = _new_init
    cls.__init__.__qualname__ = f"{cls.__qualname__}.__init__"
    return cls
`))

// CompileUserClassDecorator returns the source of a `decorate_class`
// decorator. Applied to a user class deriving from the matching ttk widget,
// it makes the class initializer pass the designed options of w to the
// toolkit constructor. Options given by the caller at construction time
// take precedence.
func (k *Kit) CompileUserClassDecorator(w widget.Widget) (string, error) {
	opts, err := options(w)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := decoratorTmpl.Execute(&b, struct{ Options []option }{opts}); err != nil {
		return "", fmt.Errorf("rendering decorator for '%s': %w", w.Name(), err)
	}
	return b.String(), nil
}

// option is one keyword argument of a ttk constructor. Value is a Python
// expression.
type option struct {
	Key   string
	Value string
}

func options(w widget.Widget) ([]option, error) {
	var opts []option
	switch w := w.(type) {
	case *widget.Button:
		opts = append(opts, option{Key: "text", Value: pyString(w.Text)})
		opts = appendPadding(opts, &w.Base)
	case *widget.Frame:
		opts = appendPadding(opts, &w.Base)
	default:
		return nil, fmt.Errorf("tkinter: widget class '%s' of '%s' has no Tk equivalent", w.Class(), w.Name())
	}
	return opts, nil
}

func appendPadding(opts []option, b *widget.Base) []option {
	if b.PaddingX == 0 && b.PaddingY == 0 {
		return opts
	}
	return append(opts, option{Key: "padding", Value: fmt.Sprintf("(%d, %d)", b.PaddingX, b.PaddingY)})
}
