package dice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
)

// Term is one signed piece of a dice expression: either NdM or a constant
type Term struct {
	Negative bool
	Count    int
	Sides    int
	Constant int
}

// IsDice reports whether the term rolls dice
func (t Term) IsDice() bool {
	return t.Sides > 0
}

// TermResult pairs a term with its roll, if it rolled dice
type TermResult struct {
	Term  Term
	Roll  *RollResult
	Value int
}

// ExpressionResult is the outcome of rolling a whole expression such as
// "1d20 + 5". Terms keep the provenance of every die.
type ExpressionResult struct {
	Expression string
	Total      int
	Terms      []*TermResult
}

// Faces summarises the dice terms only, e.g. "1d20 [15]"
func (r *ExpressionResult) Faces() string {
	var parts []string
	for _, term := range r.Terms {
		if term.Roll == nil {
			continue
		}
		parts = append(parts, term.Roll.String())
	}
	return strings.Join(parts, " + ")
}

// String renders "1d20 [15] + 5 = 20"
func (r *ExpressionResult) String() string {
	var b strings.Builder
	for i, term := range r.Terms {
		switch {
		case i == 0 && term.Term.Negative:
			b.WriteString("-")
		case i > 0 && term.Term.Negative:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if term.Roll != nil {
			b.WriteString(term.Roll.String())
		} else {
			b.WriteString(strconv.Itoa(term.Term.Constant))
		}
	}
	fmt.Fprintf(&b, " = %d", r.Total)
	return b.String()
}

// ParseExpression splits an expression like "2d6 + d4 - 1" into terms.
// Whitespace is ignored, a missing dice count means one die, and a sign
// directly after an operator folds into it ("1d20 + -2").
func ParseExpression(expression string) ([]Term, error) {
	compact := strings.Join(strings.Fields(expression), "")
	if compact == "" {
		return nil, dnderr.InvalidArgument("dice expression is empty")
	}

	var terms []Term
	negative := false
	start := 0
	for i := 0; i <= len(compact); i++ {
		if i < len(compact) && compact[i] != '+' && compact[i] != '-' {
			continue
		}

		// Unary sign: leading, or directly after another operator
		if i == start && i < len(compact) {
			if compact[i] == '-' {
				negative = !negative
			}
			start = i + 1
			continue
		}

		term, err := parseTerm(compact[start:i])
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid dice expression %q: %v", expression, err)
		}
		term.Negative = negative
		terms = append(terms, term)

		negative = i < len(compact) && compact[i] == '-'
		start = i + 1
	}

	return terms, nil
}

func parseTerm(raw string) (Term, error) {
	if raw == "" {
		return Term{}, fmt.Errorf("missing term")
	}

	idx := strings.IndexAny(raw, "dD")
	if idx < 0 {
		constant, err := strconv.Atoi(raw)
		if err != nil {
			return Term{}, fmt.Errorf("invalid constant %q", raw)
		}
		return Term{Constant: constant}, nil
	}

	count := 1
	if idx > 0 {
		var err error
		count, err = strconv.Atoi(raw[:idx])
		if err != nil || count < 1 {
			return Term{}, fmt.Errorf("invalid dice count %q", raw[:idx])
		}
	}

	sides, err := strconv.Atoi(raw[idx+1:])
	if err != nil || sides < 1 {
		return Term{}, fmt.Errorf("invalid dice size %q", raw[idx+1:])
	}

	return Term{Count: count, Sides: sides}, nil
}

// ExpressionRoller rolls whole expressions through a Roller
type ExpressionRoller struct {
	roller Roller
}

// NewExpressionRoller wraps a Roller
func NewExpressionRoller(roller Roller) *ExpressionRoller {
	if roller == nil {
		panic("roller is required")
	}
	return &ExpressionRoller{roller: roller}
}

// RollExpression parses and rolls an expression
func (e *ExpressionRoller) RollExpression(ctx context.Context, expression string) (*ExpressionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	terms, err := ParseExpression(expression)
	if err != nil {
		return nil, err
	}

	result := &ExpressionResult{
		Expression: expression,
		Terms:      make([]*TermResult, 0, len(terms)),
	}

	for _, term := range terms {
		tr := &TermResult{Term: term, Value: term.Constant}
		if term.IsDice() {
			roll, err := e.roller.Roll(term.Count, term.Sides, 0)
			if err != nil {
				return nil, dnderr.Wrapf(err, "failed to roll %dd%d", term.Count, term.Sides)
			}
			tr.Roll = roll
			tr.Value = roll.Total
		}

		if term.Negative {
			result.Total -= tr.Value
		} else {
			result.Total += tr.Value
		}
		result.Terms = append(result.Terms, tr)
	}

	return result, nil
}
