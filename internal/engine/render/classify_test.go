package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/render"
)

func TestEntryPoints(t *testing.T) {
	tests := []struct {
		name   string
		bundle domain.Bundle
		want   []string
	}{
		{
			name:   "empty bundle",
			bundle: nil,
			want:   []string{},
		},
		{
			name: "entries in bundle order",
			bundle: domain.Bundle{
				{FileName: "a.js", IsEntry: true},
				{FileName: "b.css", IsAsset: true},
				{FileName: "c.js", IsEntry: true},
				{FileName: "d.js", IsDynamicEntry: true},
			},
			want: []string{"a.js", "c.js"},
		},
		{
			name: "missing flags are excluded",
			bundle: domain.Bundle{
				{FileName: "chunk-1.js"},
				{FileName: "", IsEntry: true},
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.EntryPoints(tt.bundle))
		})
	}
}

func TestStylesheets(t *testing.T) {
	bundle := domain.Bundle{
		{FileName: "main.js", IsEntry: true},
		{FileName: "main.css", IsAsset: true},
		{FileName: "chunk.css"},
		{FileName: "logo.svg", IsAsset: true},
		{FileName: "style.css.map", IsAsset: true},
	}

	assert.Equal(t, []string{"main.css", "chunk.css"}, render.Stylesheets(bundle))
}
