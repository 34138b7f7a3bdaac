package uidef

import "github.com/hashicorp/hcl/v2"

// Attribute is one `key: value` line of a section.
type Attribute struct {
	Key   string
	Value string
	Range hcl.Range
}

// Section is one `[Name]` block of a definition.
type Section struct {
	Name string
	// Order is the zero-based declaration index among the file's sections.
	Order int
	// Range covers the header line.
	Range hcl.Range

	attrs []Attribute
	index map[string]int
}

func newSection(name string, order int, rng hcl.Range) *Section {
	return &Section{
		Name:  name,
		Order: order,
		Range: rng,
		index: make(map[string]int),
	}
}

// set stores an attribute. A repeated key replaces the earlier value but
// keeps its original position.
func (s *Section) set(attr Attribute) {
	if i, ok := s.index[attr.Key]; ok {
		s.attrs[i] = attr
		return
	}
	s.index[attr.Key] = len(s.attrs)
	s.attrs = append(s.attrs, attr)
}

// Attributes returns the section's attributes in source order.
func (s *Section) Attributes() []Attribute {
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// Attribute looks up an attribute by key.
func (s *Section) Attribute(key string) (Attribute, bool) {
	i, ok := s.index[key]
	if !ok {
		return Attribute{}, false
	}
	return s.attrs[i], true
}

// Get returns the raw value of an attribute.
func (s *Section) Get(key string) (string, bool) {
	attr, ok := s.Attribute(key)
	return attr.Value, ok
}

// Len returns the number of distinct attributes.
func (s *Section) Len() int {
	return len(s.attrs)
}

// File is a parsed definition.
type File struct {
	Filename string
	// Preamble holds attributes that appear before the first header.
	Preamble *Section
	Sections []*Section
}
