package traps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Data is the serialized form of a trap in Redis
type Data struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ChannelID string    `json:"channel_id"`
	GMNotes   string    `json:"gm_notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a new Redis-backed trap repository
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if client == nil {
		panic("redis client is required")
	}
	if timeProvider == nil {
		timeProvider = NewTimeProvider()
	}
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func trapKey(id string) string {
	return fmt.Sprintf("trap:%s", id)
}

func channelKey(channelID string) string {
	return fmt.Sprintf("channel:%s:traps", channelID)
}

func (r *redisRepo) set(ctx context.Context, t *trap.Trap) error {
	jsonData, err := json.Marshal(toData(t))
	if err != nil {
		return fmt.Errorf("failed to marshal trap data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, trapKey(t.ID), string(jsonData), 0)
	pipe.SAdd(ctx, channelKey(t.ChannelID), t.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set trap in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, trapKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check trap in Redis: %w", err)
	}
	return n > 0, nil
}

// Create stores a new trap
func (r *redisRepo) Create(ctx context.Context, t *trap.Trap) error {
	if err := validate(t); err != nil {
		return err
	}

	found, err := r.exists(ctx, t.ID)
	if err != nil {
		return err
	}
	if found {
		return dnderr.AlreadyExistsf("trap with ID %s already exists", t.ID)
	}

	now := r.timeProvider.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	return r.set(ctx, t)
}

// Get retrieves a trap by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*trap.Trap, error) {
	jsonData, err := r.client.Get(ctx, trapKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("trap not found: %s", id).WithMeta("trap_id", id)
		}
		return nil, fmt.Errorf("failed to get trap from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trap data: %w", err)
	}

	return toTrap(&data), nil
}

// Update replaces the stored trap with t
func (r *redisRepo) Update(ctx context.Context, t *trap.Trap) error {
	if err := validate(t); err != nil {
		return err
	}

	found, err := r.exists(ctx, t.ID)
	if err != nil {
		return err
	}
	if !found {
		return dnderr.NotFoundf("trap not found: %s", t.ID).WithMeta("trap_id", t.ID)
	}

	t.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, t)
}

// Delete removes a trap and its channel index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	t, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, trapKey(id))
	pipe.SRem(ctx, channelKey(t.ChannelID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete trap from Redis: %w", err)
	}

	return nil
}

// ListByChannel lists the traps placed in a channel, sorted by name.
// Index entries whose trap has vanished are skipped.
func (r *redisRepo) ListByChannel(ctx context.Context, channelID string) ([]*trap.Trap, error) {
	ids, err := r.client.SMembers(ctx, channelKey(channelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list channel traps from Redis: %w", err)
	}

	found := make([]*trap.Trap, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			t, err := r.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get trap %s: %w", id, err)
			}
			found[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*trap.Trap, 0, len(found))
	for _, t := range found {
		if t != nil {
			out = append(out, t)
		}
	}

	sortTraps(out)
	return out, nil
}

func toData(t *trap.Trap) *Data {
	return &Data{
		ID:        t.ID,
		Name:      t.Name,
		ChannelID: t.ChannelID,
		GMNotes:   t.GMNotes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTrap(data *Data) *trap.Trap {
	return &trap.Trap{
		ID:        data.ID,
		Name:      data.Name,
		ChannelID: data.ChannelID,
		GMNotes:   data.GMNotes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
