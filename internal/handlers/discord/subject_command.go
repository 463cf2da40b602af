package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/flowly/internal/models"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// SubjectCommand handles the /subject command
type SubjectCommand struct {
	BaseCommand
	studyService     study.Service
	messagingService messaging.Service
}

// NewSubjectCommand creates a new subject command handler
func NewSubjectCommand(studyService study.Service, messagingService messaging.Service) *SubjectCommand {
	categoryChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.SubjectCategories))
	for _, category := range models.SubjectCategories {
		categoryChoices = append(categoryChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(category),
			Value: string(category),
		})
	}

	subjectOption := &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "subject",
		Description:  "The subject",
		Required:     true,
		Autocomplete: true,
	}

	return &SubjectCommand{
		BaseCommand: BaseCommand{
			Name:        "subject",
			Description: "Manage the subjects you study",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a subject",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Subject name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Where you study it",
							Required:    true,
							Choices:     categoryChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename a subject or change its category",
					Options: []*discordgo.ApplicationCommandOption{
						subjectOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "New name",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "New category",
							Choices:     categoryChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a subject",
					Options:     []*discordgo.ApplicationCommandOption{subjectOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List your subjects",
				},
			},
		},
		studyService:     studyService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the subject command
func (c *SubjectCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
	switch subcommand {
	case "add":
		name, _ := stringOption(options, "name")
		category, _ := stringOption(options, "category")
		embed = c.add(ctx, name, models.SubjectCategory(category))
	case "rename":
		subjectID, _ := stringOption(options, "subject")
		update := &study.UpdateSubjectInput{SubjectID: subjectID}
		if name, ok := stringOption(options, "name"); ok {
			update.Name = &name
		}
		if category, ok := stringOption(options, "category"); ok {
			subjectCategory := models.SubjectCategory(category)
			update.Category = &subjectCategory
		}
		embed = c.update(ctx, update)
	case "remove":
		subjectID, _ := stringOption(options, "subject")
		embed = c.remove(ctx, subjectID)
	case "list":
		embed = c.list(ctx)
	default:
		return errors.New("unknown subcommand")
	}

	return RespondWithEphemeralEmbed(s, i, embed, nil)
}

// Autocomplete suggests subjects for the subject option
func (c *SubjectCommand) Autocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	focused := focusedOption(i.ApplicationCommandData())
	if focused == nil {
		return RespondWithChoices(s, i, nil)
	}

	subjects, err := c.studyService.ListSubjects(accountContext(i), &study.ListSubjectsInput{})
	if err != nil {
		log.Printf("Error listing subjects: %v", err)
		return RespondWithChoices(s, i, nil)
	}

	return RespondWithChoices(s, i, subjectChoices(subjects.Subjects, focused.StringValue()))
}

func (c *SubjectCommand) add(ctx context.Context, name string, category models.SubjectCategory) *discordgo.MessageEmbed {
	output, err := c.studyService.CreateSubject(ctx, &study.CreateSubjectInput{
		Name:     name,
		Category: category,
	})
	if err != nil {
		return c.failure(ctx, "Error creating subject", err)
	}

	return &discordgo.MessageEmbed{
		Title:       "Subject added",
		Description: fmt.Sprintf("**%s** (%s)", output.Subject.Name, output.Subject.Category),
		Color:       colorSuccess,
	}
}

func (c *SubjectCommand) update(ctx context.Context, input *study.UpdateSubjectInput) *discordgo.MessageEmbed {
	if input.Name == nil && input.Category == nil {
		return &discordgo.MessageEmbed{
			Title:       "Nothing to change",
			Description: "Give a new name, a new category, or both.",
			Color:       colorIdle,
		}
	}

	output, err := c.studyService.UpdateSubject(ctx, input)
	if err != nil {
		return c.failure(ctx, "Error updating subject", err)
	}
	if !output.Found {
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeNotFound)
	}

	return &discordgo.MessageEmbed{
		Title:       "Subject updated",
		Description: fmt.Sprintf("**%s** (%s)", output.Subject.Name, output.Subject.Category),
		Color:       colorSuccess,
	}
}

func (c *SubjectCommand) remove(ctx context.Context, subjectID string) *discordgo.MessageEmbed {
	output, err := c.studyService.RemoveSubject(ctx, &study.RemoveSubjectInput{SubjectID: subjectID})
	if err != nil {
		return c.failure(ctx, "Error removing subject", err)
	}
	if !output.Found {
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeNotFound)
	}

	return &discordgo.MessageEmbed{
		Title:       "Subject removed",
		Description: "Minutes already credited this week stay in your summary.",
		Color:       colorSuccess,
	}
}

func (c *SubjectCommand) list(ctx context.Context) *discordgo.MessageEmbed {
	output, err := c.studyService.ListSubjects(ctx, &study.ListSubjectsInput{})
	if err != nil {
		return c.failure(ctx, "Error listing subjects", err)
	}

	return renderSubjectList(output.Subjects)
}

// failure maps a study service error to the matching user-facing message
func (c *SubjectCommand) failure(ctx context.Context, action string, err error) *discordgo.MessageEmbed {
	switch {
	case errors.Is(err, study.ErrInvalidSubjectName):
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeInvalidName)
	case errors.Is(err, study.ErrInvalidCategory):
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeInvalidCategory)
	}

	log.Printf("%s: %v", action, err)
	return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
}
