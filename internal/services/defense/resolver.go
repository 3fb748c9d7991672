package defense

//go:generate mockgen -destination=mock/mock_resolver.go -package=mockdefense -source=resolver.go

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
)

// Resolver looks up a character's value for a named defense. Each rule
// system supplies its own. A nil value means the character has none.
type Resolver interface {
	ResolveDefense(ctx context.Context, char *character.Character, name trap.Defense) (*int, error)
}

// Rule variants accepted by New
const (
	VariantFourthEdition = "4e"
	VariantFixed         = "fixed"
)

// FourthEditionAttributes maps trap defenses to 4e sheet attributes
var FourthEditionAttributes = map[trap.Defense]string{
	trap.DefenseAC:   "ac",
	trap.DefenseFort: "fortitude",
	trap.DefenseRef:  "reflex",
	trap.DefenseWill: "will",
}

// New returns the resolver for a rule variant. fallback is the value the
// fixed variant answers with for every known defense.
func New(variant string, fallback int) (Resolver, error) {
	switch variant {
	case VariantFourthEdition:
		return NewAttributeResolver(FourthEditionAttributes), nil
	case VariantFixed:
		values := make(map[trap.Defense]int, len(trap.Defenses))
		for _, d := range trap.Defenses {
			values[d] = fallback
		}
		return NewFixedResolver(values), nil
	default:
		return nil, dnderr.InvalidArgumentf("unknown rule variant %q", variant)
	}
}

// AttributeResolver reads defenses off character sheet attributes
type AttributeResolver struct {
	attributes map[trap.Defense]string
}

// NewAttributeResolver creates a resolver using the given defense to
// attribute mapping
func NewAttributeResolver(attributes map[trap.Defense]string) *AttributeResolver {
	return &AttributeResolver{attributes: attributes}
}

// ResolveDefense implements Resolver
func (r *AttributeResolver) ResolveDefense(ctx context.Context, char *character.Character, name trap.Defense) (*int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if char == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	attr, ok := r.attributes[name]
	if !ok {
		return nil, dnderr.InvalidArgumentf("unknown defense %q", name).
			WithMeta("character_id", char.ID)
	}

	value, ok := char.Attribute(attr)
	if !ok {
		return nil, nil
	}
	return &value, nil
}

// FixedResolver answers from a fixed table, ignoring the character
type FixedResolver struct {
	values map[trap.Defense]int
}

// NewFixedResolver creates a table-backed resolver
func NewFixedResolver(values map[trap.Defense]int) *FixedResolver {
	return &FixedResolver{values: values}
}

// ResolveDefense implements Resolver
func (r *FixedResolver) ResolveDefense(_ context.Context, _ *character.Character, name trap.Defense) (*int, error) {
	value, ok := r.values[name]
	if !ok {
		return nil, fmt.Errorf("no fixed value for defense %q", name)
	}
	return &value, nil
}
