// Package field describes the typed inputs a widget type accepts and turns
// raw attribute strings from a UI definition into typed values.
//
// Values are carried as cty.Value so that every widget type can decode
// them into its own Go fields without the loader knowing those fields.
package field

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Kind is the declared value kind of a field.
type Kind int

const (
	// Invalid is the zero Kind. No widget type may declare it.
	Invalid Kind = iota
	// Integer fields accept optionally signed base-10 integers.
	Integer
	// Boolean fields accept true/yes/on/1 and false/no/off/0.
	Boolean
	// Text fields take the raw value unchanged.
	Text
)

// String returns the user-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Text:
		return "text"
	default:
		return "unsupported"
	}
}

// Supported reports whether values of this kind can be coerced.
func (k Kind) Supported() bool {
	return k == Integer || k == Boolean || k == Text
}

// Type returns the cty type values of this kind are coerced into.
func (k Kind) Type() cty.Type {
	switch k {
	case Integer:
		return cty.Number
	case Boolean:
		return cty.Bool
	case Text:
		return cty.String
	default:
		return cty.DynamicPseudoType
	}
}

// Descriptor is the metadata of one named, typed constructor input.
type Descriptor struct {
	Name string
	Kind Kind
}

// Values holds coerced field values keyed by field name.
type Values map[string]cty.Value

// Has reports whether a value for the named field is present.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Decode stores the named value into target, which must be a pointer to a
// Go type compatible with the value's cty type. Missing values leave target
// untouched, so constructors can pre-populate defaults.
func (v Values) Decode(name string, target any) error {
	val, ok := v[name]
	if !ok {
		return nil
	}
	return gocty.FromCtyValue(val, target)
}

// Encode converts a Go value into the cty representation of kind and stores
// it under name. Nil pointers are stored as null values.
func (v Values) Encode(name string, kind Kind, goVal any) error {
	val, err := gocty.ToCtyValue(goVal, kind.Type())
	if err != nil {
		return err
	}
	v[name] = val
	return nil
}
