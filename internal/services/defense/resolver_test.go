package defense_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/KirkDiggler/dnd-trap-bot/internal/services/defense"
	"github.com/KirkDiggler/dnd-trap-bot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeResolver_FourthEdition(t *testing.T) {
	resolver := defense.NewAttributeResolver(defense.FourthEditionAttributes)
	char := testutils.CreateTestCharacter("c1", "Lyra")

	tests := []struct {
		defense trap.Defense
		want    int
	}{
		{trap.DefenseAC, 15},
		{trap.DefenseFort, 13},
		{trap.DefenseRef, 14},
		{trap.DefenseWill, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.defense), func(t *testing.T) {
			value, err := resolver.ResolveDefense(context.Background(), char, tt.defense)
			require.NoError(t, err)
			require.NotNil(t, value)
			assert.Equal(t, tt.want, *value)
		})
	}
}

func TestAttributeResolver_MissingAttributeIsAbsent(t *testing.T) {
	resolver := defense.NewAttributeResolver(defense.FourthEditionAttributes)
	char := testutils.CreateTestCharacter("c1", "Lyra")
	delete(char.Attributes, "will")

	value, err := resolver.ResolveDefense(context.Background(), char, trap.DefenseWill)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestAttributeResolver_UnknownDefense(t *testing.T) {
	resolver := defense.NewAttributeResolver(defense.FourthEditionAttributes)

	_, err := resolver.ResolveDefense(context.Background(), testutils.CreateTestCharacter("c1", "Lyra"), trap.Defense("sanity"))
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestAttributeResolver_CancelledContext(t *testing.T) {
	resolver := defense.NewAttributeResolver(defense.FourthEditionAttributes)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.ResolveDefense(ctx, testutils.CreateTestCharacter("c1", "Lyra"), trap.DefenseAC)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	fixed, err := defense.New(defense.VariantFixed, 11)
	require.NoError(t, err)

	value, err := fixed.ResolveDefense(context.Background(), nil, trap.DefenseRef)
	require.NoError(t, err)
	assert.Equal(t, 11, *value)

	_, err = fixed.ResolveDefense(context.Background(), nil, trap.Defense("sanity"))
	assert.Error(t, err)

	fourth, err := defense.New(defense.VariantFourthEdition, 0)
	require.NoError(t, err)
	assert.IsType(t, &defense.AttributeResolver{}, fourth)

	_, err = defense.New("gurps", 0)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
