package traps

//go:generate mockgen -destination=mock/mock.go -package=mocktraps -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
)

// Repository defines the interface for trap entity storage. Update always
// replaces the stored entity as a whole.
type Repository interface {
	// Create stores a new trap
	Create(ctx context.Context, t *trap.Trap) error

	// Get retrieves a trap by ID
	Get(ctx context.Context, id string) (*trap.Trap, error)

	// Update replaces an existing trap
	Update(ctx context.Context, t *trap.Trap) error

	// Delete removes a trap
	Delete(ctx context.Context, id string) error

	// ListByChannel lists the traps placed in a channel
	ListByChannel(ctx context.Context, channelID string) ([]*trap.Trap, error)
}
