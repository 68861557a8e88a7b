package render

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Renderer reads a template, injects the bundle and writes the page.
// It keeps no state between renders and is safe for concurrent use.
type Renderer struct {
	fs ports.FileSystem
}

// NewRenderer creates a Renderer writing through fs.
func NewRenderer(fs ports.FileSystem) *Renderer {
	return &Renderer{fs: fs}
}

// Render writes exactly one html file for cfg. Nothing is written when an error is
// returned before the final write.
func (r *Renderer) Render(
	_ context.Context,
	cfg domain.RenderConfig,
	layout domain.OutputLayout,
) (*domain.RenderResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	outputDir, err := layout.Options.OutputDir()
	if err != nil {
		return nil, err
	}

	paths := ResolvePaths(cfg, outputDir)

	data, err := r.fs.ReadFile(cfg.Template)
	if err != nil {
		return nil, errors.Join(domain.ErrTemplateRead, zerr.With(err, "template", cfg.Template))
	}

	html := Substitute(string(data), cfg.ReplaceVars)
	html, injected := Inject(html, Injection{
		Scripts:     EntryPoints(layout.Bundle),
		Stylesheets: Stylesheets(layout.Bundle),
		Prefix:      cfg.Prefix,
		AssetPrefix: paths.AssetPrefix,
		Attrs:       cfg.Attrs,
	})

	target, err := filepath.Abs(paths.Target())
	if err != nil {
		return nil, errors.Join(domain.ErrWrite, zerr.With(err, "target", paths.Target()))
	}

	if err := r.fs.MkdirAll(filepath.Dir(target)); err != nil {
		return nil, errors.Join(domain.ErrWrite, zerr.With(err, "dir", filepath.Dir(target)))
	}

	out := []byte(html)
	if err := r.fs.WriteFile(target, out); err != nil {
		return nil, errors.Join(domain.ErrWrite, zerr.With(err, "target", target))
	}

	return &domain.RenderResult{
		Path:        target,
		Scripts:     injected.Scripts,
		Stylesheets: injected.Stylesheets,
		Skipped:     injected.Skipped,
		Size:        len(out),
		Checksum:    fmt.Sprintf("%016x", xxhash.Sum64(out)),
	}, nil
}
