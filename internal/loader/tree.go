package loader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/vpy/internal/field"
	"github.com/vk/vpy/internal/uidef"
	"github.com/vk/vpy/internal/widget"
)

// pendingChild is a constructed widget waiting for its parent.
type pendingChild struct {
	widget widget.Widget
	// ref is the range of the child's `parent` attribute.
	ref hcl.Range
}

// treeBuilder holds the state of a single load.
type treeBuilder struct {
	resolver Resolver
	logger   *slog.Logger

	namespace map[string]widget.Widget
	order     []string
	sections  map[string]*uidef.Section

	root widget.Widget

	pending map[string][]pendingChild
	// parents lists pending parent names in order of first reference.
	parents []string
}

func newTreeBuilder(resolver Resolver, logger *slog.Logger) *treeBuilder {
	return &treeBuilder{
		resolver:  resolver,
		logger:    logger,
		namespace: make(map[string]widget.Widget),
		sections:  make(map[string]*uidef.Section),
		pending:   make(map[string][]pendingChild),
	}
}

func (b *treeBuilder) build(sections []*uidef.Section) (widget.Widget, error) {
	b.logger.Debug("Build: Constructing widgets.", "sections", len(sections))
	for _, s := range sections {
		if err := b.construct(s); err != nil {
			return nil, err
		}
	}
	if b.root == nil {
		return nil, newError(ErrRootMissing, hcl.Range{}, "Root widget not found")
	}
	b.logger.Debug("Build: Construction complete.", "root", b.root.Name(), "parents", len(b.parents))

	if err := b.attach(); err != nil {
		return nil, err
	}
	if err := b.checkReachable(); err != nil {
		return nil, err
	}
	b.logger.Debug("Build: Attachment complete.")
	return b.root, nil
}

// construct is the first pass for one section.
func (b *treeBuilder) construct(s *uidef.Section) error {
	logger := b.logger.With("section", s.Name)

	classAttr, ok := s.Attribute(ClassKey)
	if !ok {
		return newError(ErrMissingClass, s.Range, "Widget class not specified for '%s'", s.Name)
	}

	typ, ok := b.resolver.Resolve(classAttr.Value)
	if !ok {
		return newError(ErrUnknownClass, classAttr.Range, "Invalid widget class: '%s'", classAttr.Value)
	}

	vals := make(field.Values, len(typ.Fields))
	for _, d := range typ.Fields {
		if d.Name == ClassKey || d.Name == ParentKey {
			continue
		}
		attr, ok := s.Attribute(d.Name)
		if !ok {
			continue
		}
		v, err := field.Coerce(s.Name, d, attr.Value)
		if err != nil {
			var cerr *field.CoercionError
			if errors.As(err, &cerr) {
				e := newError(ErrTypeCoercion, attr.Range, "%s", cerr.Error())
				e.Err = cerr
				return e
			}
			return fmt.Errorf("widget class '%s': %w", typ.Class, err)
		}
		vals[d.Name] = v
	}

	for _, attr := range s.Attributes() {
		if attr.Key == ClassKey || attr.Key == ParentKey {
			continue
		}
		if _, known := typ.Field(attr.Key); !known {
			logger.Debug("Ignoring attribute unknown to widget class.", "class", typ.Class, "attribute", attr.Key)
		}
	}

	w, err := typ.New(s.Name, vals)
	if err != nil {
		return fmt.Errorf("constructing '%s' of class '%s': %w", s.Name, typ.Class, err)
	}
	logger.Debug("Constructed widget.", "class", typ.Class, "fields", len(vals))

	if parentAttr, hasParent := s.Attribute(ParentKey); hasParent {
		parentName := parentAttr.Value
		if _, seen := b.pending[parentName]; !seen {
			b.parents = append(b.parents, parentName)
		}
		b.pending[parentName] = append(b.pending[parentName], pendingChild{widget: w, ref: parentAttr.Range})
	} else {
		if b.root != nil {
			return newError(ErrRootConflict, s.Range,
				"Attempt to set '%s' as root while '%s' is already set as such", s.Name, b.root.Name())
		}
		b.root = w
		logger.Debug("Widget is the root candidate.")
	}

	b.namespace[s.Name] = w
	b.sections[s.Name] = s
	b.order = append(b.order, s.Name)
	return nil
}

// attach is the second pass: hand every parent its ordered children.
func (b *treeBuilder) attach() error {
	for _, parentName := range b.parents {
		children := b.pending[parentName]
		first := children[0]

		parent, ok := b.namespace[parentName]
		if !ok {
			return newError(ErrParentNotFound, first.ref,
				"Could not find '%s' the parent of '%s'", parentName, first.widget.Name())
		}

		container, ok := parent.(widget.Container)
		if !ok {
			return newError(ErrParentNotContainer, first.ref,
				"'%s' set as parent of '%s', but its not a container", parentName, first.widget.Name())
		}

		list := make([]widget.Widget, len(children))
		for i, c := range children {
			list[i] = c.widget
		}
		container.SetChildren(list)
		b.logger.Debug("Attached children.", "parent", parentName, "count", len(list))
	}
	return nil
}

// checkReachable rejects widgets that ended up in a parent cycle. Every
// non-root widget has exactly one existing container parent at this point,
// so anything the root cannot reach hangs off a cycle.
func (b *treeBuilder) checkReachable() error {
	reached := make(map[string]struct{}, len(b.namespace))
	var visit func(w widget.Widget)
	visit = func(w widget.Widget) {
		if _, done := reached[w.Name()]; done {
			return
		}
		reached[w.Name()] = struct{}{}
		if c, ok := w.(widget.Container); ok {
			for _, child := range c.Children() {
				visit(child)
			}
		}
	}
	visit(b.root)

	if len(reached) == len(b.namespace) {
		return nil
	}
	for _, name := range b.order {
		if _, ok := reached[name]; ok {
			continue
		}
		// Follow parent references until one repeats; that one is on the cycle.
		seen := make(map[string]struct{})
		for {
			if _, again := seen[name]; again {
				break
			}
			seen[name] = struct{}{}
			name, _ = b.sections[name].Get(ParentKey)
		}
		attr, _ := b.sections[name].Attribute(ParentKey)
		return newError(ErrParentCycle, attr.Range, "'%s' is its own ancestor", name)
	}
	return nil
}
