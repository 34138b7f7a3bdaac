package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCoerce_Boolean(t *testing.T) {
	d := Descriptor{Name: "stick_north", Kind: Boolean}

	for _, raw := range []string{"1", "yes", "True", "On", "TRUE", "on"} {
		t.Run(raw, func(t *testing.T) {
			v, err := Coerce("Widget1", d, raw)
			require.NoError(t, err)
			assert.True(t, v.RawEquals(cty.True))
		})
	}

	for _, raw := range []string{"0", "no", "False", "off", "OFF"} {
		t.Run(raw, func(t *testing.T) {
			v, err := Coerce("Widget1", d, raw)
			require.NoError(t, err)
			assert.True(t, v.RawEquals(cty.False))
		})
	}
}

func TestCoerce_BooleanRejectsOtherTokens(t *testing.T) {
	d := Descriptor{Name: "stick_north", Kind: Boolean}

	for _, raw := range []string{"", "y", "2", "truthy", "nope"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Coerce("Widget1", d, raw)
			require.Error(t, err)
			assert.Equal(t, "Invalid boolean value for Widget1.stick_north", err.Error())

			var cerr *CoercionError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, raw, cerr.Raw)
		})
	}
}

func TestCoerce_Integer(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int64
		expectErr bool
	}{
		{name: "plain", raw: "1", expected: 1},
		{name: "negative", raw: "-12", expected: -12},
		{name: "explicit plus", raw: "+7", expected: 7},
		{name: "zero", raw: "0", expected: 0},
		{name: "error - decimal", raw: "1.5", expectErr: true},
		{name: "error - hex", raw: "0x10", expectErr: true},
		{name: "error - word", raw: "one", expectErr: true},
		{name: "error - empty", raw: "", expectErr: true},
	}

	d := Descriptor{Name: "grid_row", Kind: Integer}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Coerce("Widget1", d, tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid integer value for Widget1.grid_row", err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, v.RawEquals(cty.NumberIntVal(tc.expected)))
		})
	}
}

func TestCoerce_TextIsIdentity(t *testing.T) {
	d := Descriptor{Name: "text", Kind: Text}

	v, err := Coerce("Widget1", d, "Big, red button!")
	require.NoError(t, err)
	assert.Equal(t, "Big, red button!", v.AsString())
}

func TestCoerce_UnsupportedKind(t *testing.T) {
	_, err := Coerce("Widget1", Descriptor{Name: "weird", Kind: Kind(42)}, "1")
	require.Error(t, err)

	var uerr *UnsupportedKindError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "weird", uerr.Field)

	var cerr *CoercionError
	assert.False(t, errors.As(err, &cerr), "an unsupported kind is not a user input error")
}

func TestValues_DecodeAndEncode(t *testing.T) {
	vals := Values{}
	require.NoError(t, vals.Encode("grid_row", Integer, 3))
	require.NoError(t, vals.Encode("text", Text, "hi"))

	var nilRow *int
	require.NoError(t, vals.Encode("grid_column", Integer, nilRow))
	assert.True(t, vals["grid_column"].IsNull())

	var row *int
	require.NoError(t, vals.Decode("grid_row", &row))
	require.NotNil(t, row)
	assert.Equal(t, 3, *row)

	text := "default"
	require.NoError(t, vals.Decode("missing", &text))
	assert.Equal(t, "default", text)
	require.NoError(t, vals.Decode("text", &text))
	assert.Equal(t, "hi", text)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "boolean", Boolean.String())
	assert.Equal(t, "text", Text.String())
	assert.False(t, Invalid.Supported())
	assert.True(t, Text.Supported())
}
