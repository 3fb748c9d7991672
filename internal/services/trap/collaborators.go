package trap

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mocktrap -source=collaborators.go

import (
	"context"

	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/KirkDiggler/dnd-trap-bot/internal/repositories/characters"
)

// CharacterResolver finds the character sheet a victim represents. A nil
// character with a nil error means the victim has none.
type CharacterResolver interface {
	ResolveCharacter(ctx context.Context, victim *character.Victim) (*character.Character, error)
}

// DiceRoller rolls dice expressions such as "1d20 + 5"
type DiceRoller interface {
	RollExpression(ctx context.Context, expression string) (*dice.ExpressionResult, error)
}

// Announcer posts rendered activations to a channel. Delivery failures are
// the announcer's to handle.
type Announcer interface {
	Announce(ctx context.Context, channelID string, content *trapdomain.Content)
}

// ErrorReporter receives activation failures
type ErrorReporter interface {
	ReportError(ctx context.Context, channelID string, err error)
}

type repositoryCharacterResolver struct {
	repository characters.Repository
}

// NewRepositoryCharacterResolver resolves victims through a character store
func NewRepositoryCharacterResolver(repository characters.Repository) CharacterResolver {
	if repository == nil {
		panic("character repository is required")
	}
	return &repositoryCharacterResolver{repository: repository}
}

func (r *repositoryCharacterResolver) ResolveCharacter(ctx context.Context, victim *character.Victim) (*character.Character, error) {
	if !victim.HasCharacter() {
		return nil, nil
	}

	char, err := r.repository.Get(ctx, victim.CharacterID)
	if err != nil {
		// A dangling link reads as an unbacked token
		if dnderr.IsNotFound(err) {
			return nil, nil
		}
		return nil, dnderr.Wrap(err, "failed to load character").
			WithMeta("character_id", victim.CharacterID)
	}

	return char, nil
}
