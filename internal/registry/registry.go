package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/vpy/internal/widget"
)

// Module is the interface for anything that contributes widget types.
type Module interface {
	Register(r *Registry)
}

// Registry maps class names to widget types.
type Registry struct {
	types map[string]*widget.Type
}

// New creates a registry and applies the given modules.
func New(modules ...Module) *Registry {
	r := &Registry{
		types: make(map[string]*widget.Type),
	}
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}

// Register adds a widget type under its class name. Registering the same
// class twice or a type with an invalid descriptor table is a programming
// error and panics.
func (r *Registry) Register(t *widget.Type) {
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	if _, exists := r.types[t.Class]; exists {
		panic(fmt.Sprintf("widget class '%s' already registered", t.Class))
	}
	slog.Debug("Registering widget class.", "class", t.Class, "fields", len(t.Fields))
	r.types[t.Class] = t
}

// RegisterAll registers each of the given types.
func (r *Registry) RegisterAll(types ...*widget.Type) {
	for _, t := range types {
		r.Register(t)
	}
}

// Resolve returns the widget type registered under class.
func (r *Registry) Resolve(class string) (*widget.Type, bool) {
	t, ok := r.types[class]
	return t, ok
}

// Classes returns the registered class names in sorted order.
func (r *Registry) Classes() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
