package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned when a page provides neither a template nor a target.
	ErrConfiguration = zerr.New("you did not provide a template or target")

	// ErrMissingOutputLayout is returned when the bundler reported neither an output directory nor an output file.
	ErrMissingOutputLayout = zerr.New("output options specify neither dir nor file")

	// ErrTemplateRead is returned when the template file is missing or unreadable.
	ErrTemplateRead = zerr.New("failed to read template")

	// ErrWrite is returned when the destination directory or the html file could not be written.
	ErrWrite = zerr.New("failed to write html")

	// ErrConfigNotFound is returned when no configuration file could be found.
	ErrConfigNotFound = zerr.New("could not find stitch.yaml")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoPages is returned when the project declares no pages to render.
	ErrNoPages = zerr.New("no pages configured")

	// ErrInvalidVariable is returned when a --var flag is not of the form KEY=VALUE.
	ErrInvalidVariable = zerr.New("variable must be of the form KEY=VALUE")

	// ErrManifestReadFailed is returned when the bundle manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read bundle manifest")

	// ErrManifestParseFailed is returned when the bundle manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse bundle manifest")

	// ErrBundleScanFailed is returned when the output directory cannot be scanned for bundle files.
	ErrBundleScanFailed = zerr.New("failed to scan output directory")

	// ErrRenderFailed is returned when at least one page failed to render.
	ErrRenderFailed = zerr.New("render failed")
)
