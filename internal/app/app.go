// Package app implements the application layer for stitch.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/render"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	bundles      ports.BundleLoader
	fs           ports.FileSystem
	verifier     ports.Verifier
	renderer     *render.Renderer
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	bundles ports.BundleLoader,
	fsys ports.FileSystem,
	verifier ports.Verifier,
	renderer *render.Renderer,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		bundles:      bundles,
		fs:           fsys,
		verifier:     verifier,
		renderer:     renderer,
		telemetry:    telemetry,
		logger:       log,
	}
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Cwd is where the configuration search starts. Defaults to ".".
	Cwd string
	// ConfigPath loads this configuration file instead of searching for one.
	ConfigPath string
	// Manifest overrides the configured bundle manifest.
	Manifest string
	// Output overrides the configured output options when not empty.
	Output domain.OutputOptions
	// Page replaces the configured pages. The configuration file becomes optional.
	Page *domain.RenderConfig
	// Concurrency limits parallel renders. Defaults to the number of CPUs.
	Concurrency int
}

// Render loads the project and the bundle, then renders every page.
// Results are returned in page order.
func (a *App) Render(ctx context.Context, opts RenderOptions) ([]*domain.RenderResult, error) {
	// 1. Load the project
	project, err := a.loadProject(opts)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Load the bundle
	layout, err := a.loadBundle(project)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load bundle")
	}

	// 3. Render pages concurrently
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]*domain.RenderResult, len(project.Pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, page := range project.Pages {
		plugin := render.NewPlugin(page, a.renderer)
		g.Go(func() error {
			res, err := a.renderPage(gctx, plugin, layout)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "page failed"), "page", page.Name())
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrRenderFailed, err)
	}

	return results, nil
}

func (a *App) renderPage(ctx context.Context, plugin *render.Plugin, layout *domain.OutputLayout) (*domain.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, vertex := a.telemetry.Record(ctx, plugin.Config().Name())

	res, err := plugin.GenerateBundle(ctx, layout.Options, layout.Bundle)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	if len(res.Skipped) > 0 {
		msg := fmt.Sprintf("%s: no anchor tag for %s", res.Path, strings.Join(res.Skipped, ", "))
		vertex.Log(domain.LogLevelWarn, msg)
		a.logger.Warn(msg)
	}

	msg := fmt.Sprintf("wrote %s (%d scripts, %d stylesheets, %d bytes)",
		res.Path, len(res.Scripts), len(res.Stylesheets), res.Size)
	vertex.Log(domain.LogLevelInfo, msg)
	a.logger.Info(msg)
	vertex.Complete(nil)

	return res, nil
}

func (a *App) loadProject(opts RenderOptions) (*domain.Project, error) {
	cwd := opts.Cwd
	if cwd == "" {
		cwd = "."
	}

	var (
		project *domain.Project
		err     error
	)
	switch {
	case opts.ConfigPath != "":
		project, err = a.configLoader.LoadFile(opts.ConfigPath)
	case opts.Page != nil:
		project, err = a.configLoader.Load(cwd)
		if errors.Is(err, domain.ErrConfigNotFound) {
			project, err = &domain.Project{Root: cwd}, nil
		}
	default:
		project, err = a.configLoader.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if opts.Output != (domain.OutputOptions{}) {
		project.Output = opts.Output
	}
	if opts.Manifest != "" {
		project.Manifest = opts.Manifest
	}
	if opts.Page != nil {
		project.Pages = []domain.RenderConfig{*opts.Page}
	}

	if len(project.Pages) == 0 {
		return nil, domain.ErrNoPages
	}
	return project, nil
}

// loadBundle prefers a manifest: the configured one, or one the bundler left in its
// output directory. Without a manifest the output directory is scanned.
func (a *App) loadBundle(project *domain.Project) (*domain.OutputLayout, error) {
	manifest := project.Manifest
	if manifest == "" {
		if outputDir, err := project.Output.OutputDir(); err == nil {
			candidate := filepath.Join(outputDir, domain.DefaultManifestName)
			if ok, err := a.fs.Exists(candidate); err == nil && ok {
				manifest = candidate
			}
		}
	}

	if manifest == "" {
		return a.bundles.Scan(project.Output)
	}

	a.logger.Info(fmt.Sprintf("reading bundle from %s", manifest))
	layout, err := a.bundles.LoadManifest(manifest, project.Output)
	if err != nil {
		return nil, err
	}
	a.warnMissingFiles(layout)
	return layout, nil
}

// warnMissingFiles reports manifest entries that are not in the output directory,
// which usually means the manifest is stale.
func (a *App) warnMissingFiles(layout *domain.OutputLayout) {
	outputDir, err := layout.Options.OutputDir()
	if err != nil {
		return
	}

	missing, err := a.verifier.MissingFiles(outputDir, layout.Bundle.FileNames())
	if err != nil {
		a.logger.Error(err)
		return
	}
	if len(missing) > 0 {
		a.logger.Warn(fmt.Sprintf("manifest lists files missing from %s: %s", outputDir, strings.Join(missing, ", ")))
	}
}
