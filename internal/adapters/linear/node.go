package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/gravity/internal/core/ports"
)

// NodeID is the graft ID of the stdout progress reporter.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(os.Stdout), nil
		},
	})
}
