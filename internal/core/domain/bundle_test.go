package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestOutputOptions_OutputDir(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.OutputOptions
		want    string
		wantErr error
	}{
		{
			name: "dir wins over file",
			opts: domain.OutputOptions{Dir: "public/build", File: "dist/bundle.js"},
			want: "public/build",
		},
		{
			name: "directory of single file",
			opts: domain.OutputOptions{File: filepath.Join("dist", "bundle.js")},
			want: "dist",
		},
		{
			name: "bare file name",
			opts: domain.OutputOptions{File: "bundle.js"},
			want: ".",
		},
		{
			name:    "neither dir nor file",
			opts:    domain.OutputOptions{},
			wantErr: domain.ErrMissingOutputLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.OutputDir()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBundle_FileNames(t *testing.T) {
	b := domain.Bundle{
		{FileName: "b.js", IsEntry: true},
		{FileName: "a.css", IsAsset: true},
	}
	assert.Equal(t, []string{"b.js", "a.css"}, b.FileNames())
	assert.Empty(t, domain.Bundle(nil).FileNames())
}

func TestRenderConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, domain.RenderConfig{}.Validate(), domain.ErrConfiguration)
	assert.NoError(t, domain.RenderConfig{Template: "index.html"}.Validate())
	assert.NoError(t, domain.RenderConfig{Target: "index.html"}.Validate())
}

func TestRenderConfig_Name(t *testing.T) {
	assert.Equal(t, "out.html", domain.RenderConfig{Template: "in.html", Target: "out.html"}.Name())
	assert.Equal(t, "in.html", domain.RenderConfig{Template: "in.html"}.Name())
}
