// Package export renders components to static HTML snapshots and
// publishes them through a pluggable store. It is the static-output
// path: build the component once, serialize the mounted tree, write it
// somewhere durable.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/dom"
	"github.com/veldt-dev/veldt/pkg/render"
)

// Store persists one named HTML document.
type Store interface {
	Put(ctx context.Context, name string, body []byte) error
}

// Exporter renders components and writes the result to a Store.
type Exporter struct {
	store    Store
	renderer *render.Renderer
	logger   *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRenderer overrides the HTML renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(e *Exporter) { e.renderer = r }
}

// WithLogger sets the exporter's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Exporter writing to store.
func New(store Store, opts ...Option) *Exporter {
	e := &Exporter{
		store:    store,
		renderer: render.New(render.Config{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot constructs comp, renders it once, and stores the HTML under
// name. The controller is destroyed before returning.
func (e *Exporter) Snapshot(ctx context.Context, name string, comp component.Component, opts component.Options) error {
	registry := dom.NewRegistry()
	root := dom.NewElement("div", "root")
	registry.Add(root)

	el, err := component.New(comp, registry, "#root", opts, component.WithLogger(e.logger))
	if err != nil {
		return fmt.Errorf("export: build %s: %w", name, err)
	}
	defer el.Destroy()

	html, err := e.renderer.ToString(root.FirstChild())
	if err != nil {
		return fmt.Errorf("export: serialize %s: %w", name, err)
	}

	if err := e.store.Put(ctx, name, []byte(html)); err != nil {
		return fmt.Errorf("export: store %s: %w", name, err)
	}
	e.logger.Info("snapshot written", "name", name, "bytes", len(html))
	return nil
}

// FileStore writes documents under a base directory.
type FileStore struct {
	Dir string
}

// Put implements Store.
func (f FileStore) Put(_ context.Context, name string, body []byte) error {
	path := filepath.Join(f.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, body, 0o644)
}
