package widget

import (
	"fmt"

	"github.com/vk/vpy/internal/field"
)

var textField = field.Descriptor{Name: "text", Kind: field.Text}

// Button is a clickable widget with a caption.
type Button struct {
	Base
	Text string
}

// ButtonType describes Button.
var ButtonType = &Type{
	Class:  "Button",
	Fields: withLayout(textField),
	New: func(name string, vals field.Values) (Widget, error) {
		base, err := newBase(name, vals)
		if err != nil {
			return nil, err
		}
		b := &Button{Base: base}
		if err := vals.Decode(textField.Name, &b.Text); err != nil {
			return nil, fmt.Errorf("decoding %s.%s: %w", name, textField.Name, err)
		}
		return b, nil
	},
}

// Class implements Widget.
func (b *Button) Class() string { return ButtonType.Class }

// Values implements Widget.
func (b *Button) Values() field.Values {
	vals := field.Values{}
	b.Base.encode(vals)
	mustEncode(vals, textField, b.Text)
	return vals
}

// ChildList is embedded by container widgets.
type ChildList struct {
	Items []Widget
}

func newChildList() ChildList {
	return ChildList{Items: make([]Widget, 0)}
}

// Children implements Container.
func (c *ChildList) Children() []Widget {
	return c.Items
}

// SetChildren implements Container.
func (c *ChildList) SetChildren(children []Widget) {
	c.Items = children
}

// Frame is a plain container.
type Frame struct {
	Base
	ChildList
}

// FrameType describes Frame.
var FrameType = &Type{
	Class:  "Frame",
	Fields: withLayout(),
	New: func(name string, vals field.Values) (Widget, error) {
		base, err := newBase(name, vals)
		if err != nil {
			return nil, err
		}
		return &Frame{Base: base, ChildList: newChildList()}, nil
	},
}

// Class implements Widget.
func (f *Frame) Class() string { return FrameType.Class }

// Values implements Widget.
func (f *Frame) Values() field.Values {
	vals := field.Values{}
	f.Base.encode(vals)
	return vals
}

// Catalogue lists every built-in widget type.
func Catalogue() []*Type {
	return []*Type{ButtonType, FrameType}
}
