package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client}
}

func key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("character not found: %s", id).WithMeta("character_id", id)
		}
		return nil, fmt.Errorf("failed to get character from Redis: %w", err)
	}

	var char character.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character data: %w", err)
	}
	return &char, nil
}

func (r *redisRepo) Put(ctx context.Context, char *character.Character) error {
	if char == nil || char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	data, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character data: %w", err)
	}

	if err := r.client.Set(ctx, key(char.ID), string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to set character in Redis: %w", err)
	}
	return nil
}
