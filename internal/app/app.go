package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/hcl/v2"
	"gopkg.in/yaml.v3"

	"github.com/vk/vpy/internal/ctxlog"
	"github.com/vk/vpy/internal/dump"
	"github.com/vk/vpy/internal/fsutil"
	"github.com/vk/vpy/internal/loader"
	"github.com/vk/vpy/internal/uikit"
	"github.com/vk/vpy/internal/widget"
)

// diagnosticWidth is the wrap width for rendered load errors.
const diagnosticWidth = 78

// ErrLoadFailed is returned by Run when at least one definition failed to load.
var ErrLoadFailed = errors.New("failed to load UI definitions")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	kit    uikit.Kit
	loader *loader.Loader
}

// NewApp is the constructor for the main application. Rendered output goes
// to outW; logs and load diagnostics go to errW.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	kit, err := uikit.Lookup(cfg.Kit)
	if err != nil {
		return nil, err
	}
	logger.Debug("UI kit selected.", "kit", kit.Name(), "classes", kit.Classes())

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		kit:    kit,
		loader: loader.New(kit),
	}, nil
}

// Run loads every definition under the configured path and renders each
// successfully built tree. Definitions are independent: a failing one is
// reported and the rest are still processed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.UIPath)

	files, err := fsutil.Inputs(a.config.UIPath, UIExtension)
	if err != nil {
		return fmt.Errorf("failed to find UI definitions: %w", err)
	}
	a.logger.Debug("UI definitions found.", "count", len(files))

	out := newRenderer(a.outW, a.config, a.kit, len(files) > 1)
	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		root, err := a.loadFile(ctx, path)
		if err != nil {
			if !a.report(path, err) {
				return err
			}
			failed++
			continue
		}
		if err := out.render(path, root); err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
	}
	if err := out.close(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrLoadFailed, failed, len(files))
	}
	a.logger.Debug("App.Run method finished.", "loaded", len(files))
	return nil
}

// loadError pairs a load failure with the source it was found in, so the
// diagnostic can quote the offending line.
type loadError struct {
	src []byte
	err error
}

func (e *loadError) Error() string { return e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

func (a *App) loadFile(ctx context.Context, path string) (widget.Widget, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := a.loader.LoadBytes(ctx, path, src)
	if err != nil {
		return nil, &loadError{src: src, err: err}
	}
	return root, nil
}

// report writes a failure to errW. It returns false for failures that are
// not caused by the definition's content and must stop the run.
func (a *App) report(path string, err error) bool {
	var lerr *loader.Error
	if !errors.As(err, &lerr) {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			a.logger.Error("Could not read UI definition.", "file", path, "error", err)
			return true
		}
		return false
	}

	files := map[string]*hcl.File{}
	var lferr *loadError
	if errors.As(err, &lferr) {
		files[path] = &hcl.File{Bytes: lferr.src}
	}
	wr := hcl.NewDiagnosticTextWriter(a.errW, files, diagnosticWidth, false)
	if werr := wr.WriteDiagnostic(lerr.Diagnostic()); werr != nil {
		a.logger.Error("Could not write diagnostic.", "error", werr)
	}
	a.logger.Debug("UI definition rejected.", "file", path, "kind", lerr.Kind)
	return true
}

// renderer writes loaded trees in the configured form.
type renderer struct {
	w     io.Writer
	cfg   *Config
	kit   uikit.Kit
	multi bool
	yaml  *yaml.Encoder
}

func newRenderer(w io.Writer, cfg *Config, kit uikit.Kit, multi bool) *renderer {
	r := &renderer{w: w, cfg: cfg, kit: kit, multi: multi}
	if !cfg.Emit && cfg.Format == FormatYAML {
		r.yaml = yaml.NewEncoder(w)
		r.yaml.SetIndent(2)
	}
	return r
}

func (r *renderer) render(path string, root widget.Widget) error {
	switch {
	case r.cfg.Emit:
		code, err := r.kit.CompileUserClassDecorator(root)
		if err != nil {
			return err
		}
		if r.multi {
			if _, err := fmt.Fprintf(r.w, "# %s\n", path); err != nil {
				return err
			}
		}
		_, err = io.WriteString(r.w, code)
		return err

	case r.yaml != nil:
		doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{dump.Node(root)}}
		if r.multi {
			doc.HeadComment = path
		}
		return r.yaml.Encode(doc)

	default:
		if r.multi {
			if _, err := fmt.Fprintf(r.w, "%s:\n", path); err != nil {
				return err
			}
		}
		return dump.Text(r.w, root)
	}
}

func (r *renderer) close() error {
	if r.yaml == nil {
		return nil
	}
	return r.yaml.Close()
}
