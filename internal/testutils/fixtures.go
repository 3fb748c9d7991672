package testutils

import (
	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
)

// CreateTestCharacter creates a 4e-style sheet with all four defenses
func CreateTestCharacter(id, name string) *character.Character {
	return &character.Character{
		ID:   id,
		Name: name,
		Attributes: map[string]int{
			"ac":        15,
			"fortitude": 13,
			"reflex":    14,
			"will":      12,
		},
	}
}

// CreateTestVictim creates a victim token backed by characterID (may be empty)
func CreateTestVictim(id, name, characterID string) *character.Victim {
	return &character.Victim{ID: id, Name: name, CharacterID: characterID}
}

// CreateTestTrap creates a trap whose notes hold cfg
func CreateTestTrap(id, name, channelID string, cfg *trap.Configuration) *trap.Trap {
	t := &trap.Trap{ID: id, Name: name, ChannelID: channelID}
	if cfg != nil {
		if err := t.SetConfiguration(cfg); err != nil {
			panic(err)
		}
	}
	return t
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
