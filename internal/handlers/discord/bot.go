package discord

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/flowly/internal/services/focus"
	"github.com/KirkDiggler/flowly/internal/services/habit"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config

	focusCommand *FocusCommand
	habitCommand *HabitCommand
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	FocusService     focus.Service
	StudyService     study.Service
	HabitService     habit.Service
	MessagingService messaging.Service
}

// Button IDs
const (
	ButtonStopSession  = "stop_session"
	ButtonStartSession = "start_session"

	// ButtonToggleHabitPrefix is followed by the habit id
	ButtonToggleHabitPrefix = "toggle_habit:"
)

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.FocusService == nil {
		return nil, errors.New("focus service cannot be nil")
	}

	if cfg.StudyService == nil {
		return nil, errors.New("study service cannot be nil")
	}

	if cfg.HabitService == nil {
		return nil, errors.New("habit service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		config:       cfg,
		focusCommand: NewFocusCommand(cfg.FocusService, cfg.StudyService, cfg.MessagingService),
		habitCommand: NewHabitCommand(cfg.HabitService, cfg.MessagingService),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	commands := []CommandHandler{
		b.focusCommand,
		NewSubjectCommand(b.config.StudyService, b.config.MessagingService),
		NewSummaryCommand(b.config.StudyService, b.config.MessagingService),
		b.habitCommand,
		NewFlowlyCommand(b.config.StudyService, b.config.HabitService, b.config.MessagingService),
	}

	for _, cmd := range commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// applicationID falls back to the session user ID if no application ID is configured
func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if h, ok := b.commands[i.ApplicationCommandData().Name].(AutocompleteHandler); ok {
			if err := h.Autocomplete(s, i); err != nil {
				log.Printf("Error handling autocomplete for %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	ctx := accountContext(i)

	var embed *discordgo.MessageEmbed
	var components []discordgo.MessageComponent

	switch {
	case customID == ButtonStopSession:
		embed, components = b.focusCommand.stop(ctx)
	case customID == ButtonStartSession:
		embed, components = b.focusCommand.start(ctx, 0, "")
	case strings.HasPrefix(customID, ButtonToggleHabitPrefix):
		embed, components = b.habitCommand.toggle(ctx, strings.TrimPrefix(customID, ButtonToggleHabitPrefix))
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	return UpdateWithEmbed(s, i, embed, components)
}
