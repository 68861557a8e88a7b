package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stitch/internal/engine/render"
)

const helloTemplate = "<html><body><h1>Hello World.</h1></body></html>"

func TestInject_SingleScript(t *testing.T) {
	got, injected := render.Inject(helloTemplate, render.Injection{Scripts: []string{"bundle.js"}})

	want := `<html><body><h1>Hello World.</h1><script src="bundle.js"></script></body></html>`
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "<script"))
	assert.Equal(t, []string{"bundle.js"}, injected.Scripts)
	assert.Empty(t, injected.Skipped)
}

func TestInject(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		in   render.Injection
		want string
	}{
		{
			name: "stylesheets before head, scripts before body",
			tmpl: "<html><head><title>t</title></head><body></body></html>",
			in: render.Injection{
				Scripts:     []string{"main.js"},
				Stylesheets: []string{"main.css"},
			},
			want: `<html><head><title>t</title><link rel="stylesheet" type="text/css" href="main.css"></head>` +
				`<body><script src="main.js"></script></body></html>`,
		},
		{
			name: "multiple scripts keep order and are newline separated",
			tmpl: "<body></body>",
			in:   render.Injection{Scripts: []string{"index.js", "bar.js"}},
			want: "<body><script src=\"index.js\"></script>\n<script src=\"bar.js\"></script></body>",
		},
		{
			name: "attributes are space joined",
			tmpl: "<body></body>",
			in:   render.Injection{Scripts: []string{"a.js"}, Attrs: []string{"async", "defer", `type="module"`}},
			want: `<body><script async defer type="module" src="a.js"></script></body>`,
		},
		{
			name: "asset prefix precedes user prefix on scripts",
			tmpl: "<head></head><body></body>",
			in: render.Injection{
				Scripts:     []string{"a.js"},
				Stylesheets: []string{"a.css"},
				Prefix:      "/static/",
				AssetPrefix: "build/",
			},
			want: `<head><link rel="stylesheet" type="text/css" href="/static/build/a.css"></head>` +
				`<body><script src="build//static/a.js"></script></body>`,
		},
		{
			name: "last closing body tag is the anchor",
			tmpl: "<body><!-- </body> --></body>",
			in:   render.Injection{Scripts: []string{"a.js"}},
			want: `<body><!-- </body> --><script src="a.js"></script></body>`,
		},
		{
			name: "non js entries are not scripts",
			tmpl: "<body></body>",
			in:   render.Injection{Scripts: []string{"a.mjs", "b.wasm", "c.js"}},
			want: `<body><script src="c.js"></script></body>`,
		},
		{
			name: "uppercase anchors are not matched",
			tmpl: "<HEAD></HEAD><BODY></BODY>",
			in:   render.Injection{Scripts: []string{"a.js"}, Stylesheets: []string{"a.css"}},
			want: "<HEAD></HEAD><BODY></BODY>",
		},
		{
			name: "nothing to inject",
			tmpl: helloTemplate,
			in:   render.Injection{},
			want: helloTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := render.Inject(tt.tmpl, tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInject_MissingAnchorsAreReported(t *testing.T) {
	tmpl := "<div></div>"
	got, injected := render.Inject(tmpl, render.Injection{
		Scripts:     []string{"a.js"},
		Stylesheets: []string{"a.css"},
	})

	assert.Equal(t, tmpl, got)
	assert.Empty(t, injected.Scripts)
	assert.Empty(t, injected.Stylesheets)
	assert.Equal(t, []string{"a.css", "a.js"}, injected.Skipped)
}

func TestInject_NotIdempotent(t *testing.T) {
	in := render.Injection{Scripts: []string{"bundle.js"}}

	once, _ := render.Inject(helloTemplate, in)
	twice, _ := render.Inject(once, in)

	assert.Equal(t, 2, strings.Count(twice, `<script src="bundle.js"></script>`))
}
