package characters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
)

type inMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	char, ok := r.characters[id]
	if !ok {
		return nil, dnderr.NotFoundf("character not found: %s", id).WithMeta("character_id", id)
	}
	return clone(char), nil
}

func (r *inMemoryRepository) Put(_ context.Context, char *character.Character) error {
	if char == nil || char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[char.ID] = clone(char)
	return nil
}

func clone(char *character.Character) *character.Character {
	out := *char
	if char.Attributes != nil {
		out.Attributes = make(map[string]int, len(char.Attributes))
		for k, v := range char.Attributes {
			out.Attributes[k] = v
		}
	}
	return &out
}
