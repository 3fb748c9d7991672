package services

import (
	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/traps"
	"github.com/KirkDiggler/dnd-trap-bot/internal/services/defense"
	trapService "github.com/KirkDiggler/dnd-trap-bot/internal/services/trap"
)

// Provider holds all service instances
type Provider struct {
	TrapService trapService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	TrapRepository      traps.Repository
	CharacterRepository characters.Repository
	Defenses            defense.Resolver
	Dice                trapService.DiceRoller
	Announcer           trapService.Announcer     // Required
	ErrorReporter       trapService.ErrorReporter // Required
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	trapRepo := cfg.TrapRepository
	if trapRepo == nil {
		trapRepo = traps.NewInMemoryRepository(nil)
	}

	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	defenses := cfg.Defenses
	if defenses == nil {
		defenses = defense.NewAttributeResolver(defense.FourthEditionAttributes)
	}

	roller := cfg.Dice
	if roller == nil {
		roller = dice.NewExpressionRoller(dice.NewRandomRoller())
	}

	return &Provider{
		TrapService: trapService.NewService(&trapService.ServiceConfig{
			Repository:    trapRepo,
			Characters:    trapService.NewRepositoryCharacterResolver(charRepo),
			Defenses:      defenses,
			Dice:          roller,
			Announcer:     cfg.Announcer,
			ErrorReporter: cfg.ErrorReporter,
		}),
	}
}
