// Package widget defines the contracts between the loader and the widget
// catalogue, along with the catalogue itself.
//
// A widget type is described by a Type: its class name, a static table of
// field descriptors and a constructor. The loader only ever sees that
// table, so adding a widget means writing the Go struct, listing its fields
// and decoding the coerced values in the constructor.
package widget

import (
	"fmt"

	"github.com/vk/vpy/internal/field"
)

// Widget is a constructed widget instance.
type Widget interface {
	// Name is the section name the widget was declared under.
	Name() string
	// Class is the class name the widget type is registered as.
	Class() string
	// Values returns the current field values keyed by descriptor name.
	Values() field.Values
}

// Container is implemented by widgets that can hold children.
type Container interface {
	Widget
	Children() []Widget
	// SetChildren replaces the children sequence. The loader calls it at
	// most once per container.
	SetChildren(children []Widget)
}

// Constructor builds a widget from its name and the coerced values of the
// fields present in the definition.
type Constructor func(name string, vals field.Values) (Widget, error)

// Type is the static description of a constructible widget type.
type Type struct {
	Class  string
	Fields []field.Descriptor
	New    Constructor
}

// Field looks up a descriptor by name.
func (t *Type) Field(name string) (field.Descriptor, bool) {
	for _, d := range t.Fields {
		if d.Name == name {
			return d, true
		}
	}
	return field.Descriptor{}, false
}

// Validate checks that the descriptor table only uses supported kinds and
// has no duplicates.
func (t *Type) Validate() error {
	if t.Class == "" {
		return fmt.Errorf("widget type has no class name")
	}
	if t.New == nil {
		return fmt.Errorf("widget type '%s' has no constructor", t.Class)
	}
	seen := make(map[string]struct{}, len(t.Fields))
	for _, d := range t.Fields {
		if !d.Kind.Supported() {
			return fmt.Errorf("widget type '%s': %w", t.Class, &field.UnsupportedKindError{Field: d.Name, Kind: d.Kind})
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("widget type '%s' declares field '%s' twice", t.Class, d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}

// Walk visits w and its descendants depth first, parents before children.
func Walk(w Widget, fn func(w Widget, depth int)) {
	walk(w, 0, fn)
}

func walk(w Widget, depth int, fn func(w Widget, depth int)) {
	fn(w, depth)
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			walk(child, depth+1, fn)
		}
	}
}

// mustEncode stores a Go value as a field value. A failure means the
// descriptor table and the Go struct disagree.
func mustEncode(vals field.Values, d field.Descriptor, goVal any) {
	if err := vals.Encode(d.Name, d.Kind, goVal); err != nil {
		panic(fmt.Sprintf("widget: encoding field '%s': %v", d.Name, err))
	}
}
