package trap

import "time"

// Trap is the in-game entity a configuration is attached to. GMNotes holds
// the configuration document and is always rewritten as a whole.
type Trap struct {
	ID        string
	Name      string
	ChannelID string
	GMNotes   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Configuration decodes the trap's GM notes
func (t *Trap) Configuration() (*Configuration, error) {
	return ParseConfiguration(t.GMNotes)
}

// SetConfiguration replaces the GM notes with the encoded document
func (t *Trap) SetConfiguration(cfg *Configuration) error {
	notes, err := cfg.Encode()
	if err != nil {
		return err
	}
	t.GMNotes = notes
	return nil
}
