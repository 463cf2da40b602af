package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/flowly/internal/services/habit"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// HabitCommand handles the /habit command
type HabitCommand struct {
	BaseCommand
	habitService     habit.Service
	messagingService messaging.Service
}

// NewHabitCommand creates a new habit command handler
func NewHabitCommand(habitService habit.Service, messagingService messaging.Service) *HabitCommand {
	habitOption := &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "habit",
		Description:  "The habit",
		Required:     true,
		Autocomplete: true,
	}

	return &HabitCommand{
		BaseCommand: BaseCommand{
			Name:        "habit",
			Description: "Daily habit check-offs",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show today's habits",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a habit",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Habit name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Habit category",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "toggle",
					Description: "Check a habit off for today, or un-check it",
					Options:     []*discordgo.ApplicationCommandOption{habitOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a habit",
					Options:     []*discordgo.ApplicationCommandOption{habitOption},
				},
			},
		},
		habitService:     habitService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the habit command
func (c *HabitCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	ctx := accountContext(i)
	subcommand, options := subcommandOptions(data)

	var embed *discordgo.MessageEmbed
	var components []discordgo.MessageComponent

	switch subcommand {
	case "list":
		embed, components = c.today(ctx)
	case "add":
		name, _ := stringOption(options, "name")
		category, _ := stringOption(options, "category")
		embed = c.add(ctx, name, category)
	case "toggle":
		habitID, _ := stringOption(options, "habit")
		embed, components = c.toggle(ctx, habitID)
	case "remove":
		habitID, _ := stringOption(options, "habit")
		embed = c.remove(ctx, habitID)
	default:
		return errors.New("unknown subcommand")
	}

	return RespondWithEphemeralEmbed(s, i, embed, components)
}

// Autocomplete suggests habits for the habit option
func (c *HabitCommand) Autocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	focused := focusedOption(i.ApplicationCommandData())
	if focused == nil {
		return RespondWithChoices(s, i, nil)
	}

	habits, err := c.habitService.ListHabits(accountContext(i), &habit.ListHabitsInput{})
	if err != nil {
		log.Printf("Error listing habits: %v", err)
		return RespondWithChoices(s, i, nil)
	}

	return RespondWithChoices(s, i, habitChoices(habits.Habits, focused.StringValue()))
}

func (c *HabitCommand) today(ctx context.Context) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	output, err := c.habitService.GetToday(ctx, &habit.GetTodayInput{})
	if err != nil {
		log.Printf("Error getting today's habits: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage), nil
	}

	return renderHabitsToday(output)
}

func (c *HabitCommand) add(ctx context.Context, name, category string) *discordgo.MessageEmbed {
	output, err := c.habitService.CreateHabit(ctx, &habit.CreateHabitInput{
		Name:     name,
		Category: category,
	})
	if err != nil {
		if errors.Is(err, habit.ErrInvalidHabitName) {
			return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeInvalidName)
		}
		log.Printf("Error creating habit: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
	}

	return &discordgo.MessageEmbed{
		Title:       "Habit added",
		Description: fmt.Sprintf("**%s** (%s)", output.Habit.Name, output.Habit.Category),
		Color:       colorSuccess,
	}
}

func (c *HabitCommand) toggle(ctx context.Context, habitID string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	output, err := c.habitService.ToggleHabit(ctx, &habit.ToggleHabitInput{HabitID: habitID})
	if err != nil {
		if errors.Is(err, habit.ErrHabitNotFound) {
			return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeNotFound), nil
		}
		log.Printf("Error toggling habit: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage), nil
	}

	return renderHabitsToday(output.Today)
}

func (c *HabitCommand) remove(ctx context.Context, habitID string) *discordgo.MessageEmbed {
	output, err := c.habitService.DeleteHabit(ctx, &habit.DeleteHabitInput{HabitID: habitID})
	if err != nil {
		log.Printf("Error deleting habit: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
	}
	if !output.Found {
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeNotFound)
	}

	return &discordgo.MessageEmbed{
		Title: "Habit removed",
		Color: colorSuccess,
	}
}
