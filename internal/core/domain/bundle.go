package domain

import "path/filepath"

// OutputDescriptor describes one file produced by the bundler.
type OutputDescriptor struct {
	// FileName is the path of the file relative to the output directory.
	FileName string
	// IsEntry reports whether the file is a top-level entry bundle.
	IsEntry bool
	// IsDynamicEntry reports whether the file is only reachable through a dynamic import.
	IsDynamicEntry bool
	// IsAsset reports whether the file is a non-code asset such as a stylesheet.
	IsAsset bool
}

// Bundle is the ordered set of files produced by one bundler invocation.
// Order follows the bundler's report and determines the order of injected tags.
type Bundle []OutputDescriptor

// FileNames returns the file names of the bundle in order.
func (b Bundle) FileNames() []string {
	names := make([]string, 0, len(b))
	for _, d := range b {
		names = append(names, d.FileName)
	}
	return names
}

// OutputOptions mirrors the bundler's output options: either a directory or a single file.
type OutputOptions struct {
	Dir  string
	File string
}

// OutputDir returns the directory the bundler wrote into.
func (o OutputOptions) OutputDir() (string, error) {
	if o.Dir != "" {
		return o.Dir, nil
	}
	if o.File != "" {
		return filepath.Dir(o.File), nil
	}
	return "", ErrMissingOutputLayout
}

// OutputLayout describes where the bundler wrote its files and what it produced.
type OutputLayout struct {
	Options OutputOptions
	Bundle  Bundle
}
