package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/vpy/internal/field"
)

func TestButton_NewAppliesPresentFieldsOnly(t *testing.T) {
	vals := field.Values{
		"grid_row":    cty.NumberIntVal(2),
		"stick_north": cty.True,
		"text":        cty.StringVal("Big, red button!"),
	}

	w, err := ButtonType.New("Button1", vals)
	require.NoError(t, err)

	b, ok := w.(*Button)
	require.True(t, ok)
	assert.Equal(t, "Button1", b.Name())
	assert.Equal(t, "Button", b.Class())
	require.NotNil(t, b.GridRow)
	assert.Equal(t, 2, *b.GridRow)
	assert.Nil(t, b.GridColumn)
	assert.Equal(t, 1, b.GridColumnSpan, "default span survives")
	assert.True(t, b.StickNorth)
	assert.False(t, b.StickSouth)
	assert.Equal(t, "Big, red button!", b.Text)
}

func TestButton_ValuesRoundTrip(t *testing.T) {
	w, err := ButtonType.New("B", field.Values{"padding_x": cty.NumberIntVal(4), "text": cty.StringVal("ok")})
	require.NoError(t, err)

	vals := w.Values()
	for _, d := range ButtonType.Fields {
		assert.True(t, vals.Has(d.Name), "missing %s", d.Name)
	}
	assert.True(t, vals["padding_x"].RawEquals(cty.NumberIntVal(4)))
	assert.True(t, vals["grid_column"].IsNull())
	assert.Equal(t, "ok", vals["text"].AsString())
}

func TestFrame_OwnChildrenSlice(t *testing.T) {
	a, err := FrameType.New("A", field.Values{})
	require.NoError(t, err)
	b, err := FrameType.New("B", field.Values{})
	require.NoError(t, err)

	fa := a.(Container)
	fb := b.(Container)
	require.NotNil(t, fa.Children())
	assert.Empty(t, fa.Children())

	fa.SetChildren([]Widget{b})
	assert.Len(t, fa.Children(), 1)
	assert.Empty(t, fb.Children(), "containers never share a children slice")
}

func TestButton_IsNotContainer(t *testing.T) {
	w, err := ButtonType.New("B", field.Values{})
	require.NoError(t, err)
	_, ok := w.(Container)
	assert.False(t, ok)
}

func TestType_Validate(t *testing.T) {
	for _, typ := range Catalogue() {
		require.NoError(t, typ.Validate(), typ.Class)
	}

	bad := &Type{
		Class:  "Bad",
		Fields: []field.Descriptor{{Name: "x", Kind: field.Invalid}},
		New:    FrameType.New,
	}
	assert.Error(t, bad.Validate())

	dup := &Type{
		Class:  "Dup",
		Fields: []field.Descriptor{{Name: "x", Kind: field.Text}, {Name: "x", Kind: field.Integer}},
		New:    FrameType.New,
	}
	assert.Error(t, dup.Validate())
}

func TestType_Field(t *testing.T) {
	d, ok := ButtonType.Field("text")
	require.True(t, ok)
	assert.Equal(t, field.Text, d.Kind)

	_, ok = FrameType.Field("text")
	assert.False(t, ok)
}

func TestWalk(t *testing.T) {
	root, _ := FrameType.New("Root", field.Values{})
	inner, _ := FrameType.New("Inner", field.Values{})
	leaf, _ := ButtonType.New("Leaf", field.Values{})
	other, _ := ButtonType.New("Other", field.Values{})

	inner.(Container).SetChildren([]Widget{leaf})
	root.(Container).SetChildren([]Widget{inner, other})

	var visited []string
	var depths []int
	Walk(root, func(w Widget, depth int) {
		visited = append(visited, w.Name())
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{"Root", "Inner", "Leaf", "Other"}, visited)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}
