package character

import "strings"

// Character is the sheet a victim may be backed by. Attributes hold the
// numeric values a rule variant reads defenses from.
type Character struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Attributes map[string]int `json:"attributes"`
}

// Attribute looks up a sheet attribute by name, ignoring case
func (c *Character) Attribute(name string) (int, bool) {
	if c == nil || c.Attributes == nil {
		return 0, false
	}
	if value, ok := c.Attributes[name]; ok {
		return value, true
	}
	for key, value := range c.Attributes {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return 0, false
}

// SetAttribute sets a sheet attribute
func (c *Character) SetAttribute(name string, value int) {
	if c.Attributes == nil {
		c.Attributes = make(map[string]int)
	}
	c.Attributes[name] = value
}

// Victim is the token a trap fires against. CharacterID is the optional
// link to a backing character sheet.
type Victim struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CharacterID string `json:"character_id,omitempty"`
}

// HasCharacter reports whether the victim represents a character
func (v *Victim) HasCharacter() bool {
	return v != nil && v.CharacterID != ""
}
