package trap

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"golang.org/x/sync/errgroup"
)

// Activate runs a trap against victim and announces the outcome. Nothing
// escapes: failures, panics included, go to the error reporter and no
// announcement is made.
func (s *service) Activate(ctx context.Context, t *trapdomain.Trap, victim *character.Victim) {
	if t == nil {
		s.errorReporter.ReportError(ctx, "", dnderr.InvalidArgument("trap is required"))
		return
	}
	channelID := t.ChannelID

	defer func() {
		if r := recover(); r != nil {
			err := dnderr.Newf(dnderr.CodeInternal, "trap activation panicked: %v", r).
				WithMeta("trap_id", t.ID)
			log.Printf("TrapService: %v", err)
			s.errorReporter.ReportError(ctx, channelID, err)
		}
	}()

	content, err := s.activate(ctx, t, victim)
	if err != nil {
		log.Printf("TrapService: Activation of trap %s failed: %v", t.ID, err)
		s.errorReporter.ReportError(ctx, channelID, err)
		return
	}

	s.announcer.Announce(ctx, channelID, content)
}

func (s *service) activate(ctx context.Context, t *trapdomain.Trap, victim *character.Victim) (*trapdomain.Content, error) {
	cfg, err := t.Configuration()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read trap configuration").
			WithMeta("trap_id", t.ID)
	}

	char, err := s.characters.ResolveCharacter(ctx, victim)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to resolve victim").
			WithMeta("trap_id", t.ID)
	}

	act := trapdomain.NewActivationContext(t, victim, char, cfg)

	var verdict *trapdomain.Verdict
	if act.Automated() {
		verdict, err = s.judge(ctx, act)
		if err != nil {
			return nil, err
		}
		log.Printf("TrapService: Trap %s rolled %d vs %s %d (hit=%t)",
			t.ID, verdict.AttackRoll.Total, act.Config.Defense, verdict.DefenseValue, verdict.TrapHit)
	}

	return trapdomain.Render(trapdomain.NewActivationResult(act, verdict)), nil
}

// judge resolves the defense and rolls the attack concurrently, then
// compares them. A defense the character lacks counts as 0.
func (s *service) judge(ctx context.Context, act *trapdomain.ActivationContext) (*trapdomain.Verdict, error) {
	var (
		defenseValue *int
		attackRoll   *dice.ExpressionResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(guard(act, func() error {
		value, err := s.defenses.ResolveDefense(gctx, act.Character, act.Config.Defense)
		if err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, fmt.Sprintf("failed to resolve %s defense", act.Config.Defense)).
				WithMeta("trap_id", act.TrapID).
				WithMeta("character_id", act.Character.ID)
		}
		defenseValue = value
		return nil
	}))
	g.Go(guard(act, func() error {
		roll, err := s.dice.RollExpression(gctx, trapdomain.AttackRollExpression(*act.Config.Attack))
		if err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to roll trap attack").
				WithMeta("trap_id", act.TrapID)
		}
		attackRoll = roll
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if attackRoll == nil {
		return nil, dnderr.New(dnderr.CodeUnavailable, "dice roller returned no result").
			WithMeta("trap_id", act.TrapID)
	}

	defense := 0
	if defenseValue != nil {
		defense = *defenseValue
	}

	return trapdomain.NewVerdict(attackRoll, defense), nil
}

// guard turns a panic on an errgroup goroutine into a CodeInternal error.
func guard(act *trapdomain.ActivationContext, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = dnderr.Newf(dnderr.CodeInternal, "trap activation panicked: %v", r).
					WithMeta("trap_id", act.TrapID)
			}
		}()
		return fn()
	}
}
