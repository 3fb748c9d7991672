package discord

import (
	"strings"

	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	"github.com/agnivade/levenshtein"
)

// suggestProperty finds the editable property closest to name, if any is
// close enough to be a typo
func suggestProperty(name string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, prop := range trapdomain.EditableProperties {
		dist := levenshtein.ComputeDistance(lowered, strings.ToLower(prop))
		if dist > levenshteinLimit(len(prop)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = prop, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
