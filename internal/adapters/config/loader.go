// Package config provides the configuration loader for stitch.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration version understood by this loader.
const SupportedVersion = "1"

var errReplaceVarsNotMapping = errors.New("replaceVars must be a mapping of pattern to replacement")

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     ports.FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load searches cwd and its parents for stitch.yaml and loads the first one found.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration at configPath and returns the project.
func (l *Loader) LoadFile(configPath string) (*domain.Project, error) {
	var stitchfile Stitchfile
	if err := readAndUnmarshalYAML(l.fs, configPath, &stitchfile); err != nil {
		return nil, err
	}

	if stitchfile.Version != "" && stitchfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", configPath, stitchfile.Version, SupportedVersion))
	}

	root := resolveRoot(configPath, stitchfile.Root)
	project := &domain.Project{
		Root: root,
		Output: domain.OutputOptions{
			Dir:  resolvePath(root, stitchfile.Output.Dir),
			File: resolvePath(root, stitchfile.Output.File),
		},
		Manifest: resolvePath(root, stitchfile.Manifest),
	}

	if len(stitchfile.Pages) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoPages, "invalid configuration"), "config", configPath)
	}

	for i := range stitchfile.Pages {
		page, err := buildPage(root, &stitchfile.Pages[i])
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, "invalid page"), "page", i), "config", configPath)
		}
		project.Pages = append(project.Pages, page)
	}

	return project, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if ok, err := l.fs.Exists(configPath); err == nil && ok {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "searched up to the file system root"), "cwd", cwd)
}

func buildPage(root string, dto *PageDTO) (domain.RenderConfig, error) {
	vars, err := decodeReplaceVars(&dto.ReplaceVars)
	if err != nil {
		return domain.RenderConfig{}, err
	}

	page := domain.RenderConfig{
		Template:    resolvePath(root, dto.Template),
		Target:      resolveTarget(root, dto.Target),
		Prefix:      dto.Prefix,
		Attrs:       dto.Attrs,
		ReplaceVars: vars,
	}
	if err := page.Validate(); err != nil {
		return domain.RenderConfig{}, err
	}
	return page, nil
}

// decodeReplaceVars reads the mapping pair by pair so substitutions run in file order.
func decodeReplaceVars(node *yaml.Node) ([]domain.Substitution, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(errReplaceVarsNotMapping, "line", node.Line))
	}

	vars := make([]domain.Substitution, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(errReplaceVarsNotMapping, "pattern", key.Value))
		}
		vars = append(vars, domain.Substitution{Pattern: key.Value, Replacement: value.Value})
	}
	return vars, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// resolvePath rebases a relative path on root. Empty paths stay empty.
func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// resolveTarget rebases targets that name a directory. A bare file name is kept so
// that the page lands in the bundler's output directory.
func resolveTarget(root, target string) string {
	if target == "" || filepath.Dir(target) == "." {
		return target
	}
	resolved := resolvePath(root, target)
	if isDir(target) {
		resolved += string(filepath.Separator)
	}
	return resolved
}

func isDir(p string) bool {
	return p[len(p)-1] == '/' || p[len(p)-1] == filepath.Separator
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](fsys ports.FileSystem, configPath string, target *T) error {
	data, err := fsys.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "config", configPath))
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(parseErr, "config", configPath))
	}

	return nil
}
