// uuid simple generator that allows mocking
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating trap identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out ids from a fixed list, then falls back to
// random UUIDs. Used by tests that need predictable trap ids.
type SequenceGenerator struct {
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator that returns ids in order
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next queued id
func (g *SequenceGenerator) New() string {
	if g.next >= len(g.ids) {
		return uuid.New().String()
	}
	id := g.ids[g.next]
	g.next++
	return id
}
