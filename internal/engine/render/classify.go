// Package render turns an html template and the files produced by a bundler into a page
// that references those files.
package render

import (
	"path"

	"go.trai.ch/stitch/internal/core/domain"
)

const (
	jsExt  = ".js"
	cssExt = ".css"
)

// EntryPoints returns the top-level entry bundles in bundle order.
// Dynamic chunks and assets are never entries.
func EntryPoints(b domain.Bundle) []string {
	entries := make([]string, 0, len(b))
	for _, d := range b {
		if d.IsEntry && d.FileName != "" {
			entries = append(entries, d.FileName)
		}
	}
	return entries
}

// Stylesheets returns every css file of the bundle, entry or not, in bundle order.
func Stylesheets(b domain.Bundle) []string {
	return filterExt(b.FileNames(), cssExt)
}

func filterExt(names []string, ext string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" && path.Ext(name) == ext {
			out = append(out, name)
		}
	}
	return out
}
