package discord

//go:generate mockgen -destination=mock/mock_sender.go -package=mockdiscord -source=announcer.go

import (
	"context"
	"fmt"
	"log"

	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	dnderr "github.com/KirkDiggler/dnd-trap-bot/internal/errors"
	"github.com/bwmarrin/discordgo"
)

// MessageSender is the slice of *discordgo.Session used to post embeds
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts trap activations to the channel the trap lives in
type Announcer struct {
	sender MessageSender
}

// NewAnnouncer creates an announcer posting through sender
func NewAnnouncer(sender MessageSender) *Announcer {
	if sender == nil {
		panic("message sender is required")
	}
	return &Announcer{sender: sender}
}

// Announce posts content as an embed. Send failures are logged only.
func (a *Announcer) Announce(_ context.Context, channelID string, content *trapdomain.Content) {
	if content == nil {
		return
	}
	if _, err := a.sender.ChannelMessageSendEmbed(channelID, ContentEmbed(content)); err != nil {
		log.Printf("Announcer: Failed to announce trap %q in channel %s: %v", content.Title, channelID, err)
	}
}

// ErrorReporter logs activation failures and tells the channel the trap
// misfired
type ErrorReporter struct {
	sender MessageSender
}

// NewErrorReporter creates a reporter. A nil sender only logs.
func NewErrorReporter(sender MessageSender) *ErrorReporter {
	return &ErrorReporter{sender: sender}
}

// ReportError implements the trap service's error sink
func (r *ErrorReporter) ReportError(_ context.Context, channelID string, err error) {
	if err == nil {
		return
	}
	log.Printf("ErrorReporter: Trap activation failed (channel=%q code=%s meta=%v): %v",
		channelID, dnderr.GetCode(err), dnderr.GetMeta(err), err)

	if r.sender == nil || channelID == "" {
		return
	}

	embed := ErrorEmbed("Trap misfired", describeError(err)).Build()
	if _, sendErr := r.sender.ChannelMessageSendEmbed(channelID, embed); sendErr != nil {
		log.Printf("ErrorReporter: Failed to post error to channel %s: %v", channelID, sendErr)
	}
}

func describeError(err error) string {
	switch dnderr.GetCode(err) {
	case dnderr.CodeUnavailable:
		return "The dice or the character sheet could not be reached. Nothing was rolled."
	case dnderr.CodeInvalidArgument:
		return fmt.Sprintf("The trap is misconfigured: %v", err)
	case dnderr.CodeNotFound:
		return "That trap no longer exists."
	default:
		return "Something went wrong while springing the trap."
	}
}
