package trap_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfiguration_Empty(t *testing.T) {
	cfg, err := trap.ParseConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, &trap.Configuration{}, cfg)
	assert.False(t, cfg.HasAttack())
}

func TestParseConfiguration_Invalid(t *testing.T) {
	_, err := trap.ParseConfiguration("{not json")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestParseConfiguration_LegacyDocument(t *testing.T) {
	cfg, err := trap.ParseConfiguration(`{"attack":5,"defense":"ref","damage":"2d6","missHalf":true,"spotDC":"14","message":"Blades!"}`)
	require.NoError(t, err)

	assert.Equal(t, intPtr(5), cfg.Attack)
	assert.Equal(t, trap.DefenseRef, cfg.Defense)
	assert.Equal(t, "2d6", cfg.Damage)
	assert.True(t, cfg.MissHalf)
	assert.Equal(t, trap.NewDC(14), cfg.SpotDC)
	assert.Equal(t, "Blades!", cfg.Message)
}

func TestParseConfiguration_FractionalSpotDCReadsAsNaN(t *testing.T) {
	cfg, err := trap.ParseConfiguration(`{"attack":5,"defense":"ac","spotDC":12.5}`)
	require.NoError(t, err)

	assert.Equal(t, trap.NaNDC(), cfg.SpotDC)
	assert.True(t, cfg.HasAttack())
}

func TestConfiguration_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  trap.Configuration
	}{
		{name: "empty"},
		{
			name: "full",
			cfg: trap.Configuration{
				Attack:   intPtr(5),
				Defense:  trap.DefenseAC,
				Damage:   "2d6",
				MissHalf: true,
				SpotDC:   trap.NewDC(15),
				Message:  "A pit opens!",
			},
		},
		{
			name: "zero attack",
			cfg:  trap.Configuration{Attack: intPtr(0), Defense: trap.DefenseWill},
		},
		{
			name: "nan spot dc",
			cfg:  trap.Configuration{SpotDC: trap.NaNDC(), Message: "Hiss."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := tt.cfg.Encode()
			require.NoError(t, err)

			got, err := trap.ParseConfiguration(notes)
			require.NoError(t, err)
			assert.Equal(t, tt.cfg, *got)
		})
	}
}

func TestConfiguration_CloneIsDeep(t *testing.T) {
	cfg := &trap.Configuration{Attack: intPtr(2), Defense: trap.DefenseAC, SpotDC: trap.NewDC(12)}
	snapshot := cfg.Clone()

	*cfg.Attack = 9
	cfg.SpotDC.Value = 20

	assert.Equal(t, 2, *snapshot.Attack)
	assert.Equal(t, 12, snapshot.SpotDC.Value)
}

func TestConfiguration_HasAttack(t *testing.T) {
	assert.True(t, (&trap.Configuration{Attack: intPtr(1), Defense: trap.DefenseAC}).HasAttack())
	assert.False(t, (&trap.Configuration{Attack: intPtr(1)}).HasAttack())
	assert.False(t, (&trap.Configuration{Defense: trap.DefenseAC}).HasAttack())
}

func TestTrap_ConfigurationWholeDocument(t *testing.T) {
	entity := &trap.Trap{ID: "t1", GMNotes: `{"damage":"1d4","message":"old"}`}

	cfg, err := entity.Configuration()
	require.NoError(t, err)
	cfg.Message = ""
	cfg.ApplyCommand(trap.PropertyMissHalf, []string{"yes"})
	require.NoError(t, entity.SetConfiguration(cfg))

	assert.JSONEq(t, `{"damage":"1d4","missHalf":true}`, entity.GMNotes)
}

func TestDefense_IsKnown(t *testing.T) {
	assert.True(t, trap.DefenseFort.IsKnown())
	assert.False(t, trap.Defense("sanity").IsKnown())
}
