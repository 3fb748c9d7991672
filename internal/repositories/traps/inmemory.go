package traps

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	traps        map[string]*trap.Trap
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory trap repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = NewTimeProvider()
	}
	return &inMemoryRepository{
		traps:        make(map[string]*trap.Trap),
		timeProvider: timeProvider,
	}
}

// Create creates a new trap
func (r *inMemoryRepository) Create(_ context.Context, t *trap.Trap) error {
	if err := validate(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.traps[t.ID]; exists {
		return dnderr.AlreadyExistsf("trap with ID %s already exists", t.ID)
	}

	now := r.timeProvider.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	// Copy to avoid external modifications
	stored := *t
	r.traps[t.ID] = &stored

	return nil
}

// Get retrieves a trap by ID
func (r *inMemoryRepository) Get(_ context.Context, id string) (*trap.Trap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.traps[id]
	if !exists {
		return nil, dnderr.NotFoundf("trap not found: %s", id).WithMeta("trap_id", id)
	}

	out := *t
	return &out, nil
}

// Update replaces an existing trap
func (r *inMemoryRepository) Update(_ context.Context, t *trap.Trap) error {
	if err := validate(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.traps[t.ID]
	if !exists {
		return dnderr.NotFoundf("trap not found: %s", t.ID).WithMeta("trap_id", t.ID)
	}

	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = r.timeProvider.Now()

	stored := *t
	r.traps[t.ID] = &stored

	return nil
}

// Delete removes a trap
func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.traps[id]; !exists {
		return dnderr.NotFoundf("trap not found: %s", id).WithMeta("trap_id", id)
	}

	delete(r.traps, id)
	return nil
}

// ListByChannel lists the traps placed in a channel, sorted by name
func (r *inMemoryRepository) ListByChannel(_ context.Context, channelID string) ([]*trap.Trap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*trap.Trap
	for _, t := range r.traps {
		if t.ChannelID != channelID {
			continue
		}
		c := *t
		out = append(out, &c)
	}

	sortTraps(out)
	return out, nil
}

func validate(t *trap.Trap) error {
	if t == nil {
		return dnderr.InvalidArgument("trap cannot be nil")
	}
	if t.ID == "" {
		return dnderr.InvalidArgument("trap ID cannot be empty")
	}
	return nil
}

func sortTraps(traps []*trap.Trap) {
	sort.Slice(traps, func(i, j int) bool {
		if traps[i].Name != traps[j].Name {
			return traps[i].Name < traps[j].Name
		}
		return traps[i].ID < traps[j].ID
	})
}
