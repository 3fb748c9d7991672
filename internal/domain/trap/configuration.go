package trap

import (
	"encoding/json"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
)

// Defense names the character defense a trap attack targets
type Defense string

const (
	DefenseAC   Defense = "ac"
	DefenseFort Defense = "fort"
	DefenseRef  Defense = "ref"
	DefenseWill Defense = "will"
)

// Defenses lists the defenses offered to the GM, in menu order
var Defenses = []Defense{DefenseAC, DefenseFort, DefenseRef, DefenseWill}

// IsKnown reports whether d is one of Defenses. The editor stores defense
// names verbatim; validation is left to the resolver.
func (d Defense) IsKnown() bool {
	for _, known := range Defenses {
		if d == known {
			return true
		}
	}
	return false
}

// DC is a difficulty class typed in by the GM. Input that does not parse as
// an integer is kept as NaN instead of being rejected.
type DC struct {
	Value int
	NaN   bool
}

// NewDC creates a numeric DC
func NewDC(value int) *DC {
	return &DC{Value: value}
}

// NaNDC creates a DC holding a value that did not parse
func NaNDC() *DC {
	return &DC{NaN: true}
}

func (d *DC) String() string {
	if d == nil {
		return ""
	}
	if d.NaN {
		return "NaN"
	}
	return strconv.Itoa(d.Value)
}

// MarshalJSON writes NaN as the string "NaN" so it survives a round trip
func (d DC) MarshalJSON() ([]byte, error) {
	if d.NaN {
		return []byte(`"NaN"`), nil
	}
	return []byte(strconv.Itoa(d.Value)), nil
}

// UnmarshalJSON accepts a number or a string. Numbers that are not
// integers read as NaN.
func (d *DC) UnmarshalJSON(data []byte) error {
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		*d = DC{Value: number}
		return nil
	}

	var fraction float64
	if err := json.Unmarshal(data, &fraction); err == nil {
		*d = DC{NaN: true}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	if value, ok := ParseLeadingInt(text); ok {
		*d = DC{Value: value}
	} else {
		*d = DC{NaN: true}
	}
	return nil
}

// Configuration is the trap document stored in a trap's GM notes. Attack and
// Defense are meant to be set together; automation only runs when both are.
type Configuration struct {
	Attack   *int    `json:"attack,omitempty"`
	Defense  Defense `json:"defense,omitempty"`
	Damage   string  `json:"damage,omitempty"`
	MissHalf bool    `json:"missHalf,omitempty"`
	SpotDC   *DC     `json:"spotDC,omitempty"`
	Message  string  `json:"message,omitempty"`
}

// ParseConfiguration decodes a GM notes document. Empty notes yield the
// default empty configuration.
func ParseConfiguration(notes string) (*Configuration, error) {
	cfg := &Configuration{}
	if strings.TrimSpace(notes) == "" {
		return cfg, nil
	}

	if err := json.Unmarshal([]byte(notes), cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "trap notes are not a valid configuration")
	}
	return cfg, nil
}

// Encode serializes the whole configuration document
func (c *Configuration) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to encode trap configuration")
	}
	return string(data), nil
}

// HasAttack reports whether attack automation is configured
func (c *Configuration) HasAttack() bool {
	return c != nil && c.Attack != nil && c.Defense != ""
}

// Clone returns a deep copy
func (c *Configuration) Clone() Configuration {
	out := *c
	if c.Attack != nil {
		attack := *c.Attack
		out.Attack = &attack
	}
	if c.SpotDC != nil {
		dc := *c.SpotDC
		out.SpotDC = &dc
	}
	return out
}
