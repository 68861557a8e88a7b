package render

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
)

const (
	htmlExt         = ".html"
	defaultFileName = "index" + htmlExt
)

// Paths is where a page is written and how it refers back to the bundle.
type Paths struct {
	// Dir is the directory the html file is written into.
	Dir string
	// FileName is the base name of the html file.
	FileName string
	// AssetPrefix leads from Dir to the bundler's output directory.
	// It is empty or ends with a slash.
	AssetPrefix string
}

// Target returns the full path of the html file.
func (p Paths) Target() string {
	return filepath.Join(p.Dir, p.FileName)
}

// ResolvePaths computes the destination of a page given the bundler's output directory.
//
// A target without a directory component lands in outputDir. A target with one lands in
// that directory and injected urls are prefixed with the way back to outputDir.
func ResolvePaths(cfg domain.RenderConfig, outputDir string) Paths {
	p := Paths{
		Dir:      outputDir,
		FileName: fileName(cfg),
	}

	if cfg.Target == "" {
		return p
	}

	dir := filepath.Dir(cfg.Target)
	if isDirTarget(cfg.Target) {
		dir = filepath.Clean(cfg.Target)
	}
	if dir == "." {
		return p
	}

	p.Dir = dir
	p.AssetPrefix = relativePrefix(dir, outputDir)
	return p
}

func fileName(cfg domain.RenderConfig) string {
	name := cfg.Target
	if name == "" || isDirTarget(name) {
		name = cfg.Template
	}
	if name == "" {
		return defaultFileName
	}

	base := filepath.Base(name)
	if !strings.HasSuffix(base, htmlExt) {
		base += htmlExt
	}
	return base
}

// isDirTarget reports whether the target names a directory rather than a file.
func isDirTarget(target string) bool {
	return strings.HasSuffix(target, "/") || strings.HasSuffix(target, string(os.PathSeparator))
}

func relativePrefix(from, to string) string {
	rel, err := filepath.Rel(from, to)
	if err != nil {
		// Rel cannot relate an absolute and a relative path.
		absFrom, errFrom := filepath.Abs(from)
		absTo, errTo := filepath.Abs(to)
		if errFrom != nil || errTo != nil {
			return ""
		}
		if rel, err = filepath.Rel(absFrom, absTo); err != nil {
			return ""
		}
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel) + "/"
}
