package characters

import (
	"context"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
)

// Repository defines the interface for character sheet persistence
type Repository interface {
	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// Put creates or replaces a character
	Put(ctx context.Context, char *character.Character) error
}
