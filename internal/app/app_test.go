package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/core/ports/mocks"
	"go.trai.ch/stitch/internal/engine/render"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const indexTemplate = "<html><head></head><body></body></html>"

type testEnv struct {
	mem       afero.Fs
	loader    *mocks.MockConfigLoader
	bundles   *mocks.MockBundleLoader
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
	logger    *mocks.MockLogger
	app       *app.App
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		mem:       afero.NewMemMapFs(),
		loader:    mocks.NewMockConfigLoader(ctrl),
		bundles:   mocks.NewMockBundleLoader(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	fsys := fs.New(env.mem)
	env.app = app.New(env.loader, env.bundles, fsys, fs.NewVerifier(env.mem), render.NewRenderer(fsys), env.telemetry, env.logger)

	env.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, env.vertex
		},
	).AnyTimes()
	env.vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	env.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return env
}

func (e *testEnv) writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(e.mem, name, []byte(content), 0o644))
}

func (e *testEnv) readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := afero.ReadFile(e.mem, name)
	require.NoError(t, err)
	return string(data)
}

func TestApp_Render(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "/project/src/index.html", indexTemplate)
	env.writeFile(t, "/project/src/about.html", "<html><body>__WHO__</body></html>")

	output := domain.OutputOptions{Dir: "/project/public/build"}
	project := &domain.Project{
		Root:   "/project",
		Output: output,
		Pages: []domain.RenderConfig{
			{Template: "/project/src/index.html", Target: "/project/public/index.html"},
			{
				Template:    "/project/src/about.html",
				Target:      "about.html",
				Attrs:       []string{"defer"},
				ReplaceVars: []domain.Substitution{{Pattern: "__WHO__", Replacement: "us"}},
			},
		},
	}
	layout := &domain.OutputLayout{
		Options: output,
		Bundle: domain.Bundle{
			{FileName: "main.js", IsEntry: true},
			{FileName: "main.css", IsAsset: true},
		},
	}

	env.loader.EXPECT().Load("/project").Return(project, nil)
	env.bundles.EXPECT().Scan(output).Return(layout, nil)
	env.vertex.EXPECT().Complete(nil).Times(2)
	// about.html has no </head> for the stylesheet.
	env.logger.EXPECT().Warn(gomock.Any()).Times(1)

	results, err := env.app.Render(context.Background(), app.RenderOptions{Cwd: "/project"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results follow page order.
	assert.Equal(t, "/project/public/index.html", results[0].Path)
	assert.Equal(t, "/project/public/build/about.html", results[1].Path)

	assert.Equal(t,
		`<html><head><link rel="stylesheet" type="text/css" href="build/main.css"></head>`+
			`<body><script src="build/main.js"></script></body></html>`,
		env.readFile(t, "/project/public/index.html"),
	)
	assert.Equal(t,
		`<html><body>us<script defer src="main.js"></script></body></html>`,
		env.readFile(t, "/project/public/build/about.html"),
	)
	assert.Equal(t, []string{"main.css"}, results[1].Skipped)
}

func TestApp_Render_DiscoversManifestInOutputDir(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "/project/index.html", indexTemplate)
	env.writeFile(t, "/project/dist/manifest.json", "{}")
	env.writeFile(t, "/project/dist/app.js", "")

	output := domain.OutputOptions{Dir: "/project/dist"}
	env.loader.EXPECT().Load(".").Return(&domain.Project{
		Root:   "/project",
		Output: output,
		Pages:  []domain.RenderConfig{{Template: "/project/index.html"}},
	}, nil)
	env.bundles.EXPECT().LoadManifest("/project/dist/manifest.json", output).Return(&domain.OutputLayout{
		Options: output,
		Bundle:  domain.Bundle{{FileName: "app.js", IsEntry: true}},
	}, nil)
	env.vertex.EXPECT().Complete(nil)

	results, err := env.app.Render(context.Background(), app.RenderOptions{})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"app.js"}, results[0].Scripts)
}

func TestApp_Render_OverridesFromOptions(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "/tmpl/page.html", indexTemplate)
	env.writeFile(t, "/out/bundle.js", "")

	output := domain.OutputOptions{File: "/out/bundle.js"}
	page := &domain.RenderConfig{Template: "/tmpl/page.html", Prefix: "/assets/"}

	env.loader.EXPECT().LoadFile("/cfg/stitch.yaml").Return(&domain.Project{
		Root:     "/cfg",
		Output:   domain.OutputOptions{Dir: "/configured"},
		Manifest: "/configured/manifest.json",
		Pages:    []domain.RenderConfig{{Template: "/configured/index.html"}},
	}, nil)
	env.bundles.EXPECT().LoadManifest("/m.json", output).Return(&domain.OutputLayout{
		Options: output,
		Bundle:  domain.Bundle{{FileName: "bundle.js", IsEntry: true}},
	}, nil)
	env.vertex.EXPECT().Complete(nil)

	results, err := env.app.Render(context.Background(), app.RenderOptions{
		ConfigPath: "/cfg/stitch.yaml",
		Manifest:   "/m.json",
		Output:     output,
		Page:       page,
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "/out/page.html", results[0].Path)
	assert.Contains(t, env.readFile(t, "/out/page.html"), `<script src="/assets/bundle.js"></script>`)
}

func TestApp_Render_AdHocPageWithoutConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "/work/index.html", indexTemplate)

	notFound := zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "searched up to the file system root"), "cwd", "/work")
	output := domain.OutputOptions{Dir: "/work/dist"}

	env.loader.EXPECT().Load("/work").Return(nil, notFound)
	env.bundles.EXPECT().Scan(output).Return(&domain.OutputLayout{Options: output}, nil)
	env.vertex.EXPECT().Complete(nil)

	results, err := env.app.Render(context.Background(), app.RenderOptions{
		Cwd:    "/work",
		Output: output,
		Page:   &domain.RenderConfig{Template: "/work/index.html"},
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, indexTemplate, env.readFile(t, "/work/dist/index.html"))
}

func TestApp_Render_WarnsAboutSkippedFiles(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "/p/fragment.html", "<div></div>")

	output := domain.OutputOptions{Dir: "/p/dist"}
	env.loader.EXPECT().Load(".").Return(&domain.Project{
		Output: output,
		Pages:  []domain.RenderConfig{{Template: "/p/fragment.html"}},
	}, nil)
	env.bundles.EXPECT().Scan(output).Return(&domain.OutputLayout{
		Options: output,
		Bundle:  domain.Bundle{{FileName: "main.js", IsEntry: true}},
	}, nil)
	env.logger.EXPECT().Warn(gomock.Any()).Times(1)
	env.vertex.EXPECT().Complete(nil)

	results, err := env.app.Render(context.Background(), app.RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"main.js"}, results[0].Skipped)
	assert.Equal(t, "<div></div>", env.readFile(t, "/p/dist/fragment.html"))
}

func TestApp_Render_PageFailure(t *testing.T) {
	env := newTestEnv(t)

	output := domain.OutputOptions{Dir: "/p/dist"}
	env.loader.EXPECT().Load(".").Return(&domain.Project{
		Output: output,
		Pages:  []domain.RenderConfig{{Template: "/p/missing.html"}},
	}, nil)
	env.bundles.EXPECT().Scan(output).Return(&domain.OutputLayout{Options: output}, nil)
	env.vertex.EXPECT().Complete(gomock.Not(nil))

	results, err := env.app.Render(context.Background(), app.RenderOptions{})
	require.Error(t, err)

	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	assert.ErrorIs(t, err, domain.ErrTemplateRead)
}

func TestApp_Render_LoadErrors(t *testing.T) {
	errLoad := errors.New("config load error")

	tests := []struct {
		name     string
		setup    func(env *testEnv)
		expected error
	}{
		{
			name: "config loader fails",
			setup: func(env *testEnv) {
				env.loader.EXPECT().Load(".").Return(nil, errLoad)
			},
			expected: errLoad,
		},
		{
			name: "no pages",
			setup: func(env *testEnv) {
				env.loader.EXPECT().Load(".").Return(&domain.Project{}, nil)
			},
			expected: domain.ErrNoPages,
		},
		{
			name: "bundle scan fails",
			setup: func(env *testEnv) {
				env.loader.EXPECT().Load(".").Return(&domain.Project{
					Pages: []domain.RenderConfig{{Template: "index.html"}},
				}, nil)
				env.bundles.EXPECT().Scan(domain.OutputOptions{}).Return(nil, domain.ErrMissingOutputLayout)
			},
			expected: domain.ErrMissingOutputLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env)

			_, err := env.app.Render(context.Background(), app.RenderOptions{})
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestApp_Render_CanceledContext(t *testing.T) {
	env := newTestEnv(t)

	output := domain.OutputOptions{Dir: "/p/dist"}
	env.loader.EXPECT().Load(".").Return(&domain.Project{
		Output: output,
		Pages:  []domain.RenderConfig{{Template: "/p/index.html"}},
	}, nil)
	env.bundles.EXPECT().Scan(output).Return(&domain.OutputLayout{Options: output}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.app.Render(ctx, app.RenderOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Render_WarnsAboutStaleManifest(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, "/p/index.html", indexTemplate)
	env.writeFile(t, "/p/dist/main.js", "")

	output := domain.OutputOptions{Dir: "/p/dist"}
	env.loader.EXPECT().Load(".").Return(&domain.Project{
		Output:   output,
		Manifest: "/p/dist/manifest.json",
		Pages:    []domain.RenderConfig{{Template: "/p/index.html"}},
	}, nil)
	env.bundles.EXPECT().LoadManifest("/p/dist/manifest.json", output).Return(&domain.OutputLayout{
		Options: output,
		Bundle: domain.Bundle{
			{FileName: "main.js", IsEntry: true},
			{FileName: "old-1a2b.js", IsEntry: true},
		},
	}, nil)
	env.logger.EXPECT().Warn("manifest lists files missing from /p/dist: old-1a2b.js")
	env.vertex.EXPECT().Complete(nil)

	results, err := env.app.Render(context.Background(), app.RenderOptions{})
	require.NoError(t, err)

	// Stale entries are still injected.
	assert.Equal(t, []string{"main.js", "old-1a2b.js"}, results[0].Scripts)
}
