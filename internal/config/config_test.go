package config_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-trap-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-abcdefghijkl")
	t.Setenv("DISCORD_APP_ID", "app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "traps.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "4e", cfg.Rules.Variant)
	assert.Equal(t, 10, cfg.Rules.DefaultDefense)
	assert.Empty(t, cfg.Discord.GuildID)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		storage config.StorageConfig
		variant string
		wantErr bool
	}{
		{
			name:    "memory",
			storage: config.StorageConfig{Backend: config.StorageMemory},
			variant: "4e",
		},
		{
			name:    "redis without url",
			storage: config.StorageConfig{Backend: config.StorageRedis},
			variant: "4e",
			wantErr: true,
		},
		{
			name:    "redis with url",
			storage: config.StorageConfig{Backend: config.StorageRedis, RedisURL: "redis://localhost:6379/0"},
			variant: "fixed",
		},
		{
			name:    "unknown backend",
			storage: config.StorageConfig{Backend: "postgres"},
			variant: "4e",
			wantErr: true,
		},
		{
			name:    "unknown variant",
			storage: config.StorageConfig{Backend: config.StorageSQLite},
			variant: "5e",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Storage: tt.storage, Rules: config.RulesConfig{Variant: tt.variant}}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
