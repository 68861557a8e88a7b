// Package bundle provides the loader for the files produced by the bundler.
package bundle

import (
	"errors"
	"path"
	"path/filepath"

	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	jsExt     = ".js"
	assetType = "asset"
	outputKey = "output"
)

var errNotMapping = errors.New("expected a mapping of file names")

// scanIgnores are skipped when the output directory is scanned.
var scanIgnores = []string{"*.map", "*.html", domain.DefaultManifestName}

var _ ports.BundleLoader = (*Loader)(nil)

// Loader implements ports.BundleLoader from a manifest file or by scanning the output directory.
type Loader struct {
	fs     ports.FileSystem
	walker *fs.Walker
}

// NewLoader creates a new Loader.
func NewLoader(fsys ports.FileSystem, walker *fs.Walker) *Loader {
	return &Loader{fs: fsys, walker: walker}
}

// Manifest is the structure of a bundle manifest.
//
// Files is kept as a yaml.Node so the order of the bundle survives decoding.
// A manifest without a files key is read as a plain files map.
type Manifest struct {
	Output OutputDTO `yaml:"output"`
	Files  yaml.Node `yaml:"files"`
}

// OutputDTO represents the output options recorded by the bundler.
type OutputDTO struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// FileDTO represents one output file in the manifest.
type FileDTO struct {
	FileName       string `yaml:"fileName"`
	Type           string `yaml:"type"`
	IsEntry        bool   `yaml:"isEntry"`
	IsDynamicEntry bool   `yaml:"isDynamicEntry"`
	IsAsset        bool   `yaml:"isAsset"`
}

// LoadManifest reads the manifest at path. Output options in the manifest are only used
// when opts is empty, and relative ones are resolved against the manifest's directory.
func (l *Loader) LoadManifest(manifestPath string, opts domain.OutputOptions) (*domain.OutputLayout, error) {
	data, err := l.fs.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(err, "manifest", manifestPath))
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(err, "manifest", manifestPath))
	}

	root := documentRoot(&doc)
	if root == nil {
		return &domain.OutputLayout{Options: opts}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(errNotMapping, "manifest", manifestPath))
	}

	var manifest Manifest
	if err := root.Decode(&manifest); err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(err, "manifest", manifestPath))
	}

	files, plain := &manifest.Files, false
	if files.Kind == 0 {
		files, plain = root, true
	}

	bundle, err := decodeFiles(files, plain)
	if err != nil {
		return nil, zerr.With(err, "manifest", manifestPath)
	}

	if opts == (domain.OutputOptions{}) {
		base := filepath.Dir(manifestPath)
		opts = domain.OutputOptions{
			Dir:  rebase(base, manifest.Output.Dir),
			File: rebase(base, manifest.Output.File),
		}
	}

	return &domain.OutputLayout{Options: opts, Bundle: bundle}, nil
}

// Scan lists the files below the output directory. Every .js file counts as an entry,
// every other file as an asset. Names are relative to the output directory.
func (l *Loader) Scan(opts domain.OutputOptions) (*domain.OutputLayout, error) {
	outputDir, err := opts.OutputDir()
	if err != nil {
		return nil, err
	}

	var bundle domain.Bundle
	for file, err := range l.walker.WalkFiles(outputDir, scanIgnores) {
		if err != nil {
			return nil, errors.Join(domain.ErrBundleScanFailed, zerr.With(err, "dir", outputDir))
		}

		rel, err := filepath.Rel(outputDir, file)
		if err != nil {
			return nil, errors.Join(domain.ErrBundleScanFailed, zerr.With(err, "file", file))
		}

		name := filepath.ToSlash(rel)
		isEntry := path.Ext(name) == jsExt
		bundle = append(bundle, domain.OutputDescriptor{
			FileName: name,
			IsEntry:  isEntry,
			IsAsset:  !isEntry,
		})
	}

	return &domain.OutputLayout{Options: opts, Bundle: bundle}, nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	switch doc.Kind {
	case 0:
		return nil
	case yaml.DocumentNode:
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	default:
		return doc
	}
}

// decodeFiles walks a mapping node pair by pair, keeping the key order. In a plain files
// map the output key still holds the output options.
func decodeFiles(node *yaml.Node, plain bool) (domain.Bundle, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(errNotMapping, "line", node.Line))
	}

	bundle := make(domain.Bundle, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if plain && key.Value == outputKey {
			continue
		}

		var dto FileDTO
		if value.Kind == yaml.MappingNode {
			if err := value.Decode(&dto); err != nil {
				return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(err, "file", key.Value))
			}
		}

		name := dto.FileName
		if name == "" {
			name = key.Value
		}
		bundle = append(bundle, domain.OutputDescriptor{
			FileName:       name,
			IsEntry:        dto.IsEntry,
			IsDynamicEntry: dto.IsDynamicEntry,
			IsAsset:        dto.IsAsset || dto.Type == assetType,
		})
	}
	return bundle, nil
}

func rebase(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
