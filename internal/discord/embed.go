package discord

import (
	"time"

	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	"github.com/bwmarrin/discordgo"
)

// Common embed colors
const (
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorWarning = 0xffaa00
	ColorInfo    = 0x0099ff
)

// Discord rejects fields with an empty name or value
const blank = "\u200b"

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Timestamp sets the embed timestamp
func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Field adds a field, substituting a blank for empty name or value
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if name == "" {
		name = blank
	}
	if value == "" {
		value = blank
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// ErrorEmbed creates a pre-styled error embed
func ErrorEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("❌ " + title).
		Description(description).
		Color(ColorError).
		Timestamp(time.Now())
}

// SuccessEmbed creates a pre-styled success embed
func SuccessEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("✅ " + title).
		Description(description).
		Color(ColorSuccess)
}

// ContentEmbed lays out rendered trap content: the flavor block becomes the
// description, every other block a field in order.
func ContentEmbed(content *trapdomain.Content) *discordgo.MessageEmbed {
	b := NewEmbed().Title(content.Title).Color(content.Color)

	for _, block := range content.Blocks {
		if block.Kind == trapdomain.BlockFlavor {
			b.Description(block.Text)
			continue
		}
		b.Field(block.Label, block.Text, false)
	}

	return b.Build()
}

// PropertiesEmbed lists a trap's configurable properties
func PropertiesEmbed(t *trapdomain.Trap, props []*trapdomain.Property) *discordgo.MessageEmbed {
	b := NewEmbed().
		Title("🪤 " + t.Name).
		Color(trapdomain.ActivationColor).
		Footer("Trap ID: " + t.ID)

	for _, prop := range props {
		b.Field(prop.Name, prop.Value, true)
	}

	return b.Build()
}
