package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/vpy/internal/ctxlog"
	"github.com/vk/vpy/internal/uidef"
	"github.com/vk/vpy/internal/widget"
)

// Reserved attribute keys.
const (
	ClassKey  = "class"
	ParentKey = "parent"
)

// Resolver maps a class name to a constructible widget type.
type Resolver interface {
	Resolve(class string) (*widget.Type, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(class string) (*widget.Type, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(class string) (*widget.Type, bool) {
	return f(class)
}

// Loader builds widget trees from UI definitions.
type Loader struct {
	resolver Resolver
}

// New creates a loader that looks widget classes up through resolver.
func New(resolver Resolver) *Loader {
	if resolver == nil {
		panic("loader: nil resolver")
	}
	return &Loader{resolver: resolver}
}

// LoadFile reads and loads the definition stored at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (widget.Widget, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading UI definition: %w", err)
	}
	return l.LoadBytes(ctx, path, src)
}

// Load reads a definition from r and returns its root widget. The filename
// is only used in source ranges.
func (l *Loader) Load(ctx context.Context, filename string, r io.Reader) (widget.Widget, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return l.LoadBytes(ctx, filename, src)
}

// LoadBytes loads a definition held in memory.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (widget.Widget, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)
	logger.Debug("Loading UI definition.", "bytes", len(src))

	f, err := uidef.Parse(filename, src)
	if err != nil {
		var serr *uidef.SyntaxError
		if errors.As(err, &serr) {
			e := newError(ErrParse, serr.Range, "%s", serr.Msg)
			e.Err = serr
			return nil, e
		}
		return nil, err
	}
	if n := f.Preamble.Len(); n > 0 {
		logger.Debug("Ignoring attributes declared before the first section.", "count", n)
	}
	logger.Debug("Parsed UI definition.", "sections", len(f.Sections))

	root, err := newTreeBuilder(l.resolver, logger).build(f.Sections)
	if err != nil {
		logger.Debug("Loading UI definition failed.", "error", err)
		return nil, err
	}

	logger.Info("UI definition loaded.", "root", root.Name(), "widgets", len(f.Sections))
	return root, nil
}
