package trap

import (
	"strconv"

	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
)

// AttackRollExpression is the expression rolled for a trap attack
func AttackRollExpression(attack int) string {
	return "1d20 + " + strconv.Itoa(attack)
}

// ActivationContext is one trap firing against one victim. Config is a
// snapshot taken when the trap fired; later edits do not affect it.
type ActivationContext struct {
	TrapID    string
	TrapName  string
	ChannelID string
	Victim    *character.Victim
	Character *character.Character
	Config    Configuration
}

// NewActivationContext snapshots cfg for an activation
func NewActivationContext(t *Trap, victim *character.Victim, char *character.Character, cfg *Configuration) *ActivationContext {
	return &ActivationContext{
		TrapID:    t.ID,
		TrapName:  t.Name,
		ChannelID: t.ChannelID,
		Victim:    victim,
		Character: char,
		Config:    cfg.Clone(),
	}
}

// Automated reports whether the activation computes a hit/miss verdict
func (a *ActivationContext) Automated() bool {
	return a.Character != nil && a.Config.HasAttack()
}

// Verdict is the computed outcome of a trap attack
type Verdict struct {
	DefenseValue int
	AttackRoll   *dice.ExpressionResult
	TrapHit      bool
}

// NewVerdict compares the attack roll against the defense. Ties go to the trap.
func NewVerdict(attackRoll *dice.ExpressionResult, defenseValue int) *Verdict {
	return &Verdict{
		DefenseValue: defenseValue,
		AttackRoll:   attackRoll,
		TrapHit:      attackRoll.Total >= defenseValue,
	}
}

// ActivationResult carries everything the renderer needs. Verdict is nil
// when the activation only shows its flavor message. Treat as read-only.
type ActivationResult struct {
	TrapName   string
	VictimName string
	Message    string
	Attack     *int
	Defense    Defense
	Damage     string
	MissHalf   bool
	Verdict    *Verdict
}

// NewActivationResult builds the result for an activation
func NewActivationResult(act *ActivationContext, verdict *Verdict) *ActivationResult {
	result := &ActivationResult{
		TrapName: act.TrapName,
		Message:  act.Config.Message,
		Attack:   act.Config.Attack,
		Defense:  act.Config.Defense,
		Damage:   act.Config.Damage,
		MissHalf: act.Config.MissHalf,
		Verdict:  verdict,
	}

	switch {
	case act.Character != nil && act.Character.Name != "":
		result.VictimName = act.Character.Name
	case act.Victim != nil:
		result.VictimName = act.Victim.Name
	}

	return result
}
