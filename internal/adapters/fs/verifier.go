package fs

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct {
	fs afero.Fs
}

// NewVerifier creates a new Verifier over fsys.
func NewVerifier(fsys afero.Fs) *Verifier {
	return &Verifier{fs: fsys}
}

// MissingFiles returns the slash separated names that do not exist below root.
func (v *Verifier) MissingFiles(root string, names []string) ([]string, error) {
	var missing []string
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		ok, err := afero.Exists(v.fs, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat bundle file"), "path", path)
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
