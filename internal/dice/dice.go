package dice

import (
	"fmt"
	"strings"
)

// RollResult is the outcome of rolling count dice of one size
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// String renders the roll as "2d6 [3,5]"
func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	return fmt.Sprintf("%dd%d %s", r.Count, r.Sides, compact)
}

// NewRollResult totals the faces of a roll
func NewRollResult(sides, bonus int, faces []int) *RollResult {
	raw := 0
	for _, face := range faces {
		raw += face
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    faces,
		Bonus:    bonus,
		Count:    len(faces),
		Sides:    sides,
		RawTotal: raw,
	}
}
