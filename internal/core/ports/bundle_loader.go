package ports

import "go.trai.ch/stitch/internal/core/domain"

// BundleLoader defines the interface for obtaining the files produced by the bundler.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundle_loader.go -destination=mocks/mock_bundle_loader.go -package=mocks
type BundleLoader interface {
	// LoadManifest reads a bundler manifest. Options found in the manifest
	// take precedence over the zero values in opts.
	LoadManifest(path string, opts domain.OutputOptions) (*domain.OutputLayout, error)
	// Scan lists the files below the output directory of opts.
	Scan(opts domain.OutputOptions) (*domain.OutputLayout, error)
}
