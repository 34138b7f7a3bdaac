package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

var (
	trueWords  = map[string]struct{}{"true": {}, "yes": {}, "on": {}, "1": {}}
	falseWords = map[string]struct{}{"false": {}, "no": {}, "off": {}, "0": {}}
)

// CoercionError reports a raw value that cannot be read as its field's kind.
type CoercionError struct {
	Section string
	Field   string
	Kind    Kind
	Raw     string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("Invalid %s value for %s.%s", e.Kind, e.Section, e.Field)
}

// UnsupportedKindError reports a field declared with a kind the coercer does
// not know. It points at a misconfigured widget type, not at bad input.
type UnsupportedKindError struct {
	Field string
	Kind  Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("field %q declares unsupported kind %d", e.Field, int(e.Kind))
}

// Coerce converts raw into a typed value according to d.Kind. The section
// name is only used to build a precise error.
func Coerce(section string, d Descriptor, raw string) (cty.Value, error) {
	switch d.Kind {
	case Text:
		return cty.StringVal(raw), nil

	case Integer:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cty.NilVal, &CoercionError{Section: section, Field: d.Name, Kind: d.Kind, Raw: raw}
		}
		return cty.NumberIntVal(i), nil

	case Boolean:
		word := strings.ToLower(raw)
		if _, ok := trueWords[word]; ok {
			return cty.True, nil
		}
		if _, ok := falseWords[word]; ok {
			return cty.False, nil
		}
		return cty.NilVal, &CoercionError{Section: section, Field: d.Name, Kind: d.Kind, Raw: raw}

	default:
		return cty.NilVal, &UnsupportedKindError{Field: d.Name, Kind: d.Kind}
	}
}
