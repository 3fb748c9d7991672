package trap

import "fmt"

// Property is one entry of the GM-facing trap property menu
type Property struct {
	ID          string
	Name        string
	Description string
	Value       string
	Options     []string
	Properties  []*Property
}

// Properties lists the configurable properties and their current values
func Properties(cfg *Configuration) []*Property {
	defenses := make([]string, len(Defenses))
	for i, d := range Defenses {
		defenses[i] = string(d)
	}

	attack := "none"
	if cfg.HasAttack() {
		attack = fmt.Sprintf("%+d vs %s", *cfg.Attack, cfg.Defense)
	}

	missHalf := "no"
	if cfg.MissHalf {
		missHalf = "yes"
	}

	return []*Property{
		{
			ID:          PropertyAttack,
			Name:        "Attack Roll",
			Description: "The trap's attack roll bonus vs a defense.",
			Value:       attack,
			Properties: []*Property{
				{ID: "bonus", Name: "Attack Bonus", Description: "What is the attack roll modifier?"},
				{ID: "vs", Name: "Defense", Description: "What defense does the attack target?", Options: defenses},
			},
		},
		{
			ID:          PropertyDamage,
			Name:        "Damage",
			Description: "The dice roll expression for the trap's damage.",
			Value:       cfg.Damage,
		},
		{
			ID:          PropertyMissHalf,
			Name:        "Miss - Half Damage",
			Description: "Does the trap deal half damage on a miss?",
			Value:       missHalf,
			Options:     []string{"yes", "no"},
		},
		{
			ID:          PropertySpotDC,
			Name:        "Perception DC",
			Description: "The skill check DC to spot the trap.",
			Value:       cfg.SpotDC.String(),
		},
	}
}
