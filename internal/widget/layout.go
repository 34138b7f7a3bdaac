package widget

import (
	"fmt"

	"github.com/vk/vpy/internal/field"
)

// LayoutFields are the grid placement fields every catalogue widget has.
var LayoutFields = []field.Descriptor{
	{Name: "grid_column", Kind: field.Integer},
	{Name: "grid_row", Kind: field.Integer},
	{Name: "grid_columnspan", Kind: field.Integer},
	{Name: "grid_rowspan", Kind: field.Integer},
	{Name: "stick_north", Kind: field.Boolean},
	{Name: "stick_east", Kind: field.Boolean},
	{Name: "stick_south", Kind: field.Boolean},
	{Name: "stick_west", Kind: field.Boolean},
	{Name: "margin_x", Kind: field.Integer},
	{Name: "margin_y", Kind: field.Integer},
	{Name: "padding_x", Kind: field.Integer},
	{Name: "padding_y", Kind: field.Integer},
}

// Base carries the name and grid placement shared by all catalogue widgets.
type Base struct {
	WidgetName string

	GridColumn     *int // nil means "let the toolkit decide"
	GridRow        *int
	GridColumnSpan int
	GridRowSpan    int

	StickNorth bool
	StickEast  bool
	StickSouth bool
	StickWest  bool

	MarginX  int
	MarginY  int
	PaddingX int
	PaddingY int
}

// Name implements Widget.
func (b *Base) Name() string {
	return b.WidgetName
}

func (b *Base) targets() []any {
	return []any{
		&b.GridColumn, &b.GridRow, &b.GridColumnSpan, &b.GridRowSpan,
		&b.StickNorth, &b.StickEast, &b.StickSouth, &b.StickWest,
		&b.MarginX, &b.MarginY, &b.PaddingX, &b.PaddingY,
	}
}

func newBase(name string, vals field.Values) (Base, error) {
	b := Base{
		WidgetName:     name,
		GridColumnSpan: 1,
		GridRowSpan:    1,
	}
	for i, target := range b.targets() {
		d := LayoutFields[i]
		if err := vals.Decode(d.Name, target); err != nil {
			return Base{}, fmt.Errorf("decoding %s.%s: %w", name, d.Name, err)
		}
	}
	return b, nil
}

func (b *Base) encode(vals field.Values) {
	for i, target := range b.targets() {
		mustEncode(vals, LayoutFields[i], target)
	}
}

// withLayout returns LayoutFields followed by extra, in a fresh slice.
func withLayout(extra ...field.Descriptor) []field.Descriptor {
	out := make([]field.Descriptor, 0, len(LayoutFields)+len(extra))
	out = append(out, LayoutFields...)
	return append(out, extra...)
}
