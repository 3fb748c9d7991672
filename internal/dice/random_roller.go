package dice

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// randomRoller rolls from a math/rand source. *rand.Rand is not safe for
// concurrent use, hence the mutex.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a random roller with a fixed seed. The same seed
// replays the same sequence of rolls.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, fmt.Errorf("invalid dice size d%d", sides)
	}

	r.mu.Lock()
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.rng.Intn(sides) + 1
	}
	r.mu.Unlock()

	return NewRollResult(sides, bonus, faces), nil
}
