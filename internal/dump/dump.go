// Package dump renders loaded widget trees for people and tools.
package dump

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/vk/vpy/internal/widget"
)

// Text writes an indented outline of the tree rooted at root, one widget
// per line followed by its non-null field values in name order.
func Text(w io.Writer, root widget.Widget) error {
	var err error
	widget.Walk(root, func(wgt widget.Widget, depth int) {
		if err != nil {
			return
		}
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "%s (%s)", wgt.Name(), wgt.Class())
		vals := wgt.Values()
		for _, name := range fieldNames(wgt) {
			fmt.Fprintf(&b, " %s=%s", name, formatValue(vals[name]))
		}
		b.WriteByte('\n')
		_, err = io.WriteString(w, b.String())
	})
	return err
}

// YAML writes the tree rooted at root as a single YAML document.
func YAML(w io.Writer, root widget.Widget) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Node(root)); err != nil {
		return err
	}
	return enc.Close()
}

// Node builds the YAML representation of the tree rooted at root. Keys keep
// a fixed order: name, class, fields, children.
func Node(root widget.Widget) *yaml.Node {
	n := mapping()
	addPair(n, "name", scalar("!!str", root.Name()))
	addPair(n, "class", scalar("!!str", root.Class()))

	vals := root.Values()
	if names := fieldNames(root); len(names) > 0 {
		fields := mapping()
		for _, name := range names {
			addPair(fields, name, valueNode(vals[name]))
		}
		addPair(n, "fields", fields)
	}

	if c, ok := root.(widget.Container); ok {
		children := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, child := range c.Children() {
			children.Content = append(children.Content, Node(child))
		}
		addPair(n, "children", children)
	}
	return n
}

// fieldNames returns the names of the widget's non-null values, sorted.
func fieldNames(w widget.Widget) []string {
	vals := w.Values()
	names := make([]string, 0, len(vals))
	for name, v := range vals {
		if v.IsNull() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatValue(v cty.Value) string {
	switch ty := v.Type(); {
	case ty.Equals(cty.String):
		return strconv.Quote(v.AsString())
	case ty.Equals(cty.Bool):
		return strconv.FormatBool(v.True())
	case ty.Equals(cty.Number):
		return v.AsBigFloat().Text('f', -1)
	default:
		return v.GoString()
	}
}

func valueNode(v cty.Value) *yaml.Node {
	switch ty := v.Type(); {
	case ty.Equals(cty.String):
		return scalar("!!str", v.AsString())
	case ty.Equals(cty.Bool):
		return scalar("!!bool", strconv.FormatBool(v.True()))
	case ty.Equals(cty.Number):
		return scalar("!!int", v.AsBigFloat().Text('f', -1))
	default:
		return scalar("!!str", v.GoString())
	}
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar("!!str", key), value)
}
