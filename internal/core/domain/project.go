package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "stitch.yaml"
	// DefaultManifestName is looked up in the output directory when no manifest is configured.
	DefaultManifestName = "manifest.json"
)

// Project is the loaded configuration of a stitch project.
type Project struct {
	// Root is the directory relative paths are resolved against.
	Root string
	// Output describes where the bundler writes its files.
	Output OutputOptions
	// Manifest is the path of the bundler's manifest. Empty means discover or scan.
	Manifest string
	// Pages are rendered independently of each other.
	Pages []RenderConfig
}
