package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/stitch/internal/core/ports"
)

const (
	// BackendNodeID is the unique identifier for the afero backend Graft node.
	BackendNodeID graft.ID = "adapter.fs.backend"
	// FileSystemNodeID is the unique identifier for the file system Graft node.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// VerifierNodeID is the unique identifier for the verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	// Backend Node, patched with a MemMapFs in tests
	graft.Register(graft.Node[afero.Fs]{
		ID:        BackendNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BackendNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			backend, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return New(backend), nil
		},
	})

	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BackendNodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			backend, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(backend), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BackendNodeID},
		Run: func(ctx context.Context) (ports.Verifier, error) {
			backend, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewVerifier(backend), nil
		},
	})
}
