package discord

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/flowly/internal/services/habit"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// FlowlyCommand handles the /flowly command
type FlowlyCommand struct {
	BaseCommand
	studyService     study.Service
	habitService     habit.Service
	messagingService messaging.Service
}

// NewFlowlyCommand creates a new flowly command handler
func NewFlowlyCommand(studyService study.Service, habitService habit.Service, messagingService messaging.Service) *FlowlyCommand {
	return &FlowlyCommand{
		BaseCommand: BaseCommand{
			Name:        "flowly",
			Description: "Account commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Erase your minutes, subjects, weekly summary and habits",
				},
			},
		},
		studyService:     studyService,
		habitService:     habitService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the flowly command
func (c *FlowlyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	subcommand, _ := subcommandOptions(data)
	switch subcommand {
	case "reset":
		return RespondWithEphemeralEmbed(s, i, c.reset(accountContext(i)), nil)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *FlowlyCommand) reset(ctx context.Context) *discordgo.MessageEmbed {
	if err := c.studyService.ResetAccount(ctx, &study.ResetAccountInput{}); err != nil {
		log.Printf("Error resetting account: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
	}

	if err := c.habitService.ResetHabits(ctx, &habit.ResetHabitsInput{}); err != nil {
		log.Printf("Error resetting habits: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
	}

	return &discordgo.MessageEmbed{
		Title:       "Account reset",
		Description: "Your minutes, subjects, weekly summary and habits are back to a fresh start.",
		Color:       colorSuccess,
	}
}
