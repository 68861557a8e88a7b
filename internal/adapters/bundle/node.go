package bundle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the bundle loader Graft node.
const NodeID graft.ID = "adapter.bundle_loader"

func init() {
	graft.Register(graft.Node[ports.BundleLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.BundleLoader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, walker), nil
		},
	})
}
