package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/dnd-trap-bot/internal/dice"
)

// ManualMockRoller implements dice.Roller by handing out scripted faces in
// order. It is safe to share between goroutines.
type ManualMockRoller struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewManualMockRoller creates a roller with nothing scripted
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetNextRoll queues one more face
func (m *ManualMockRoller) SetNextRoll(face int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = append(m.faces, face)
}

// SetRolls replaces the script
func (m *ManualMockRoller) SetRolls(faces []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = faces
	m.next = 0
}

// Remaining reports how many scripted faces are unused
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.faces) - m.next
}

// Roll implements dice.Roller. It fails once the script runs out or when a
// scripted face does not fit the die.
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.next+count > len(m.faces) {
		return nil, fmt.Errorf("need %d scripted faces, %d left", count, len(m.faces)-m.next)
	}

	faces := make([]int, count)
	for i := range faces {
		face := m.faces[m.next+i]
		if face < 1 || face > sides {
			return nil, fmt.Errorf("scripted face %d does not fit a d%d", face, sides)
		}
		faces[i] = face
	}
	m.next += count

	return dice.NewRollResult(sides, bonus, faces), nil
}
