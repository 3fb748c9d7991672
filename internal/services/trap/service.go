package trap

//go:generate mockgen -destination=mock/mock_service.go -package=mocktrap -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/traps"
	"github.com/KirkDiggler/dnd-trap-bot/internal/services/defense"
	"github.com/KirkDiggler/dnd-trap-bot/internal/uuid"
)

// Repository is an alias for the trap repository interface
type Repository = traps.Repository

// Service defines the trap service interface
type Service interface {
	// CreateTrap places a new, unconfigured trap in a channel
	CreateTrap(ctx context.Context, input *CreateTrapInput) (*trapdomain.Trap, error)

	// GetTrap retrieves a trap by ID
	GetTrap(ctx context.Context, trapID string) (*trapdomain.Trap, error)

	// DeleteTrap removes a trap
	DeleteTrap(ctx context.Context, trapID string) error

	// ListChannelTraps lists the traps placed in a channel
	ListChannelTraps(ctx context.Context, channelID string) ([]*trapdomain.Trap, error)

	// ModifyProperty applies one GM property command and writes the whole
	// configuration back. argv is the property name followed by its args.
	ModifyProperty(ctx context.Context, trapID string, argv []string) (*trapdomain.Configuration, error)

	// SetMessage replaces the flavor text shown when the trap fires
	SetMessage(ctx context.Context, trapID, message string) (*trapdomain.Configuration, error)

	// Properties returns the property menu for a trap
	Properties(ctx context.Context, trapID string) ([]*trapdomain.Property, error)

	// Trigger loads a trap and activates it against victim
	Trigger(ctx context.Context, trapID string, victim *character.Victim)

	// Activate runs a trap against victim and announces the outcome. It
	// never fails: errors go to the error reporter instead.
	Activate(ctx context.Context, t *trapdomain.Trap, victim *character.Victim)
}

// CreateTrapInput contains data for creating a trap
type CreateTrapInput struct {
	Name      string
	ChannelID string
	Message   string // Optional flavor text
}

type service struct {
	repository    Repository
	characters    CharacterResolver
	defenses      defense.Resolver
	dice          DiceRoller
	announcer     Announcer
	errorReporter ErrorReporter
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository        // Required
	Characters    CharacterResolver // Required
	Defenses      defense.Resolver  // Required
	Dice          DiceRoller        // Required
	Announcer     Announcer         // Required
	ErrorReporter ErrorReporter     // Required
	UUIDGenerator uuid.Generator    // Optional, will use default if nil
}

// NewService creates a new trap service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Characters == nil {
		panic("character resolver is required")
	}
	if cfg.Defenses == nil {
		panic("defense resolver is required")
	}
	if cfg.Dice == nil {
		panic("dice roller is required")
	}
	if cfg.Announcer == nil {
		panic("announcer is required")
	}
	if cfg.ErrorReporter == nil {
		panic("error reporter is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		characters:    cfg.Characters,
		defenses:      cfg.Defenses,
		dice:          cfg.Dice,
		announcer:     cfg.Announcer,
		errorReporter: cfg.ErrorReporter,
		uuidGenerator: cfg.UUIDGenerator,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateTrap places a new, unconfigured trap in a channel
func (s *service) CreateTrap(ctx context.Context, input *CreateTrapInput) (*trapdomain.Trap, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, dnderr.InvalidArgument("trap name is required")
	}
	if strings.TrimSpace(input.ChannelID) == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	t := &trapdomain.Trap{
		ID:        s.uuidGenerator.New(),
		Name:      name,
		ChannelID: input.ChannelID,
	}
	if err := t.SetConfiguration(&trapdomain.Configuration{Message: input.Message}); err != nil {
		return nil, dnderr.Wrap(err, "failed to encode trap configuration")
	}

	if err := s.repository.Create(ctx, t); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create trap '%s'", name).
			WithMeta("channel_id", input.ChannelID)
	}

	log.Printf("TrapService: Created trap %s (%s) in channel %s", t.Name, t.ID, t.ChannelID)
	return t, nil
}

// GetTrap retrieves a trap by ID
func (s *service) GetTrap(ctx context.Context, trapID string) (*trapdomain.Trap, error) {
	if strings.TrimSpace(trapID) == "" {
		return nil, dnderr.InvalidArgument("trap ID is required")
	}

	t, err := s.repository.Get(ctx, trapID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get trap '%s'", trapID).
			WithMeta("trap_id", trapID)
	}
	return t, nil
}

// DeleteTrap removes a trap
func (s *service) DeleteTrap(ctx context.Context, trapID string) error {
	if strings.TrimSpace(trapID) == "" {
		return dnderr.InvalidArgument("trap ID is required")
	}

	if err := s.repository.Delete(ctx, trapID); err != nil {
		return dnderr.Wrapf(err, "failed to delete trap '%s'", trapID).
			WithMeta("trap_id", trapID)
	}
	return nil
}

// ListChannelTraps lists the traps placed in a channel
func (s *service) ListChannelTraps(ctx context.Context, channelID string) ([]*trapdomain.Trap, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	list, err := s.repository.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list traps for channel '%s'", channelID).
			WithMeta("channel_id", channelID)
	}
	return list, nil
}

// ModifyProperty applies one property command. Unknown property names are
// accepted and leave the configuration untouched, but the document is still
// rewritten.
func (s *service) ModifyProperty(ctx context.Context, trapID string, argv []string) (*trapdomain.Configuration, error) {
	if len(argv) == 0 {
		return nil, dnderr.InvalidArgument("property name is required").
			WithMeta("trap_id", trapID)
	}

	property, args := argv[0], argv[1:]
	return s.rewrite(ctx, trapID, func(cfg *trapdomain.Configuration) {
		cfg.ApplyCommand(property, args)
	})
}

// SetMessage replaces the flavor text shown when the trap fires
func (s *service) SetMessage(ctx context.Context, trapID, message string) (*trapdomain.Configuration, error) {
	return s.rewrite(ctx, trapID, func(cfg *trapdomain.Configuration) {
		cfg.Message = message
	})
}

// rewrite reads the trap's configuration, edits it, and replaces the whole
// stored document. Concurrent edits race and the last write wins.
func (s *service) rewrite(ctx context.Context, trapID string, edit func(cfg *trapdomain.Configuration)) (*trapdomain.Configuration, error) {
	t, err := s.GetTrap(ctx, trapID)
	if err != nil {
		return nil, err
	}

	cfg, err := t.Configuration()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read trap configuration").
			WithMeta("trap_id", trapID)
	}

	edit(cfg)

	if err := t.SetConfiguration(cfg); err != nil {
		return nil, dnderr.Wrap(err, "failed to encode trap configuration").
			WithMeta("trap_id", trapID)
	}
	if err := s.repository.Update(ctx, t); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save trap '%s'", trapID).
			WithMeta("trap_id", trapID)
	}

	return cfg, nil
}

// Properties returns the property menu for a trap
func (s *service) Properties(ctx context.Context, trapID string) ([]*trapdomain.Property, error) {
	t, err := s.GetTrap(ctx, trapID)
	if err != nil {
		return nil, err
	}

	cfg, err := t.Configuration()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read trap configuration").
			WithMeta("trap_id", trapID)
	}

	return trapdomain.Properties(cfg), nil
}

// Trigger loads a trap and activates it. A trap that cannot be loaded is
// reported; there is no channel to report to, so the reporter gets "".
func (s *service) Trigger(ctx context.Context, trapID string, victim *character.Victim) {
	t, err := s.GetTrap(ctx, trapID)
	if err != nil {
		log.Printf("TrapService: Failed to load trap %s for activation: %v", trapID, err)
		s.errorReporter.ReportError(ctx, "", err)
		return
	}

	s.Activate(ctx, t, victim)
}
