package render

import (
	"context"
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
)

// PluginName identifies the plugin towards the bundler.
const PluginName = "html-template"

// Plugin binds one page configuration to the bundler's "bundle generated" hook.
type Plugin struct {
	cfg      domain.RenderConfig
	renderer *Renderer
}

// NewPlugin creates a Plugin for cfg. The configuration is copied so later changes by
// the caller do not leak into renders.
func NewPlugin(cfg domain.RenderConfig, renderer *Renderer) *Plugin {
	cfg.Attrs = slices.Clone(cfg.Attrs)
	cfg.ReplaceVars = slices.Clone(cfg.ReplaceVars)
	return &Plugin{cfg: cfg, renderer: renderer}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return PluginName
}

// Config returns a copy of the page configuration.
func (p *Plugin) Config() domain.RenderConfig {
	cfg := p.cfg
	cfg.Attrs = slices.Clone(p.cfg.Attrs)
	cfg.ReplaceVars = slices.Clone(p.cfg.ReplaceVars)
	return cfg
}

// GenerateBundle is invoked once per bundler output. It returns after the page has
// been written, or with the error that stopped it.
func (p *Plugin) GenerateBundle(
	ctx context.Context,
	opts domain.OutputOptions,
	bundle domain.Bundle,
) (*domain.RenderResult, error) {
	return p.renderer.Render(ctx, p.cfg, domain.OutputLayout{Options: opts, Bundle: bundle})
}
