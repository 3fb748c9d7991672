package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the source of dice faces. Expressions, attack rolls and
// damage all go through one so tests can script the faces.
type Roller interface {
	// Roll rolls count dice with the given number of sides and adds bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}
