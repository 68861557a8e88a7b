package fs

import (
	"errors"
	iofs "io/fs"
	"iter"
	"path/filepath"

	"github.com/spf13/afero"
)

// errSkipFile marks a single ignored file; it never leaves the walk function.
var errSkipFile = errors.New("skip file")

// Walker provides file walking functionality.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a new Walker over fsys.
func NewWalker(fsys afero.Fs) *Walker {
	return &Walker{fs: fsys}
}

// WalkFiles yields all files below root in lexical order, skipping .git and ignored entries.
// Yielded paths start with root. A walk error is yielded with an empty path and ends the walk.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := afero.Walk(w.fs, root, func(path string, info iofs.FileInfo, err error) error {
			if err != nil {
				return err
			}

			switch skip := w.shouldSkip(info, ignores); {
			case errors.Is(skip, errSkipFile):
				return nil
			case skip != nil:
				return skip
			}

			if info.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// shouldSkip returns filepath.SkipDir for ignored directories, errSkipFile for ignored
// files and nil otherwise.
func (w *Walker) shouldSkip(info iofs.FileInfo, ignores []string) error {
	name := info.Name()

	if info.IsDir() && name == ".git" {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return errSkipFile
		}
	}

	return nil
}
