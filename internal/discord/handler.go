package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-trap-bot/internal/domain/character"
	trapdomain "github.com/KirkDiggler/dnd-trap-bot/internal/domain/trap"
	trapservice "github.com/KirkDiggler/dnd-trap-bot/internal/services/trap"
	"github.com/bwmarrin/discordgo"
)

// CommandName is the root slash command
const CommandName = "trap"

// InteractionResponder is the slice of *discordgo.Session used to answer
// interactions
type InteractionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// CommandRegistrar is the slice of *discordgo.Session used to register
// slash commands
type CommandRegistrar interface {
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// Handler answers the GM's /trap commands
type Handler struct {
	trapService trapservice.Service
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	TrapService trapservice.Service // Required
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.TrapService == nil {
		panic("trap service is required")
	}
	return &Handler{trapService: cfg.TrapService}
}

func trapIDOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "trap",
		Description: description,
		Required:    true,
	}
}

// Commands returns the slash commands the handler serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Place, configure and spring traps",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "create",
					Description: "Place a new trap in this channel",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Trap name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message",
							Description: "Text shown when the trap is sprung",
						},
					},
				},
				{
					Name:        "set",
					Description: "Change a trap property (attack, damage, missHalf, spotDC)",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						trapIDOption("Trap ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "property",
							Description: "Property name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "args",
							Description: "Values, e.g. \"5 ref\" for attack",
						},
					},
				},
				{
					Name:        "message",
					Description: "Change the text shown when the trap is sprung",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						trapIDOption("Trap ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "Flavor text",
							Required:    true,
						},
					},
				},
				{
					Name:        "show",
					Description: "Show a trap, or list the traps in this channel",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "trap",
							Description: "Trap ID",
						},
					},
				},
				{
					Name:        "trigger",
					Description: "Spring a trap on someone",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						trapIDOption("Trap ID"),
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "victim",
							Description: "Who walked into it",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character",
							Description: "Character sheet ID (defaults to the victim's user ID)",
						},
					},
				},
				{
					Name:        "delete",
					Description: "Remove a trap",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						trapIDOption("Trap ID"),
					},
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(r CommandRegistrar, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := r.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}
	return nil
}

// HandleInteraction is the discordgo event handler for interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.Respond(s, i)
}

// Respond answers a /trap command through r
func (h *Handler) Respond(r InteractionResponder, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != CommandName {
		return
	}

	data := h.execute(context.Background(), i)
	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("Error responding to /%s: %v", CommandName, err)
	}
}

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func (m optionMap) str(name string) string {
	opt, ok := m[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

func toOptionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	m := make(optionMap, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func ephemeral(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

func failure(action string, err error) *discordgo.InteractionResponseData {
	return ephemeral(fmt.Sprintf("❌ Failed to %s: %v", action, err))
}

func (h *Handler) execute(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return ephemeral("❌ Missing subcommand")
	}

	sub := data.Options[0]
	opts := toOptionMap(sub.Options)

	switch sub.Name {
	case "create":
		return h.create(ctx, i.ChannelID, opts)
	case "set":
		return h.set(ctx, opts)
	case "message":
		return h.message(ctx, opts)
	case "show":
		return h.show(ctx, i.ChannelID, opts)
	case "trigger":
		return h.trigger(ctx, opts, data.Resolved)
	case "delete":
		return h.remove(ctx, opts)
	default:
		return ephemeral(fmt.Sprintf("❌ Unknown subcommand: %s", sub.Name))
	}
}

func (h *Handler) create(ctx context.Context, channelID string, opts optionMap) *discordgo.InteractionResponseData {
	t, err := h.trapService.CreateTrap(ctx, &trapservice.CreateTrapInput{
		Name:      opts.str("name"),
		ChannelID: channelID,
		Message:   opts.str("message"),
	})
	if err != nil {
		return failure("create trap", err)
	}

	embed := SuccessEmbed("Trap placed", fmt.Sprintf("**%s** is armed.", t.Name)).
		Footer("Trap ID: " + t.ID).
		Build()
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

func (h *Handler) set(ctx context.Context, opts optionMap) *discordgo.InteractionResponseData {
	trapID := opts.str("trap")
	property := strings.TrimSpace(opts.str("property"))
	argv := append([]string{property}, strings.Fields(opts.str("args"))...)

	if _, err := h.trapService.ModifyProperty(ctx, trapID, argv); err != nil {
		return failure("update trap", err)
	}

	resp := h.propertiesResponse(ctx, trapID)
	if !trapdomain.IsEditableProperty(property) {
		hint := fmt.Sprintf("⚠️ `%s` is not a trap property; nothing changed.", property)
		if suggestion, ok := suggestProperty(property); ok {
			hint += fmt.Sprintf(" Did you mean `%s`?", suggestion)
		}
		resp.Content = hint
	}
	return resp
}

func (h *Handler) message(ctx context.Context, opts optionMap) *discordgo.InteractionResponseData {
	trapID := opts.str("trap")
	if _, err := h.trapService.SetMessage(ctx, trapID, opts.str("text")); err != nil {
		return failure("update trap", err)
	}
	return h.propertiesResponse(ctx, trapID)
}

func (h *Handler) show(ctx context.Context, channelID string, opts optionMap) *discordgo.InteractionResponseData {
	if trapID := opts.str("trap"); trapID != "" {
		return h.propertiesResponse(ctx, trapID)
	}

	list, err := h.trapService.ListChannelTraps(ctx, channelID)
	if err != nil {
		return failure("list traps", err)
	}
	if len(list) == 0 {
		return ephemeral("No traps in this channel.")
	}

	b := NewEmbed().Title("🪤 Traps in this channel").Color(ColorInfo)
	for _, t := range list {
		b.Field(t.Name, "`"+t.ID+"`", false)
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{b.Build()},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

func (h *Handler) propertiesResponse(ctx context.Context, trapID string) *discordgo.InteractionResponseData {
	t, err := h.trapService.GetTrap(ctx, trapID)
	if err != nil {
		return failure("load trap", err)
	}
	props, err := h.trapService.Properties(ctx, trapID)
	if err != nil {
		return failure("load trap", err)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{PropertiesEmbed(t, props)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

func (h *Handler) trigger(ctx context.Context, opts optionMap, resolved *discordgo.ApplicationCommandInteractionDataResolved) *discordgo.InteractionResponseData {
	trapID := opts.str("trap")

	victimOpt, ok := opts["victim"]
	if !ok {
		return ephemeral("❌ A victim is required")
	}
	user := victimOpt.UserValue(nil)
	if resolved != nil {
		if full, found := resolved.Users[user.ID]; found {
			user = full
		}
	}

	victim := &character.Victim{
		ID:          user.ID,
		Name:        user.DisplayName(),
		CharacterID: opts.str("character"),
	}
	if victim.Name == "" {
		victim.Name = "<@" + user.ID + ">"
	}
	if victim.CharacterID == "" {
		victim.CharacterID = user.ID
	}

	// Outcome is announced to the channel by the service
	h.trapService.Trigger(ctx, trapID, victim)
	return ephemeral("🪤 *click*")
}

func (h *Handler) remove(ctx context.Context, opts optionMap) *discordgo.InteractionResponseData {
	trapID := opts.str("trap")
	if err := h.trapService.DeleteTrap(ctx, trapID); err != nil {
		return failure("delete trap", err)
	}
	return ephemeral("🗑️ Trap removed.")
}
