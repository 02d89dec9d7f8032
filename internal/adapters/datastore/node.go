package datastore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gravity/internal/core/ports"
)

// NodeID is the graft ID of the store opener.
const NodeID graft.ID = "adapter.store_opener"

func init() {
	graft.Register(graft.Node[ports.StoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreOpener, error) {
			return Opener{}, nil
		},
	})
}
