package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/curve/internal/core/ports"
)

// NodeID is the unique identifier for the domain resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

// Factory creates a resolver for the configured logarithm lower bound.
type Factory func(epsilon float64) ports.DomainResolver

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return func(epsilon float64) ports.DomainResolver {
				return New(epsilon)
			}, nil
		},
	})
}
