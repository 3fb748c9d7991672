package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestProperty(t *testing.T) {
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{input: "atack", want: "attack", found: true},
		{input: "damge", want: "damage", found: true},
		{input: "misshalf", want: "missHalf", found: true},
		{input: "spotdc", want: "spotDC", found: true},
		{input: "spot", want: "spotDC", found: true},
		{input: "dmg", want: "", found: false},
		{input: "colour", want: "", found: false},
		{input: "", want: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, found := suggestProperty(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
