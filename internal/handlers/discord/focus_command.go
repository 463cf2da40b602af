package discord

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/flowly/internal/models"
	"github.com/KirkDiggler/flowly/internal/services/focus"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// FocusCommand handles the /focus command
type FocusCommand struct {
	BaseCommand
	focusService     focus.Service
	studyService     study.Service
	messagingService messaging.Service
}

// NewFocusCommand creates a new focus command handler
func NewFocusCommand(focusService focus.Service, studyService study.Service, messagingService messaging.Service) *FocusCommand {
	durationChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.FocusDurationPresets))
	for _, minutes := range models.FocusDurationPresets {
		durationChoices = append(durationChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  formatMinutes(minutes),
			Value: minutes,
		})
	}

	return &FocusCommand{
		BaseCommand: BaseCommand{
			Name:        "focus",
			Description: "Focus timer commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a focus session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "minutes",
							Description: "Planned length of the session",
							Choices:     durationChoices,
						},
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "subject",
							Description:  "Subject to credit the minutes to",
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the running session and credit the minutes",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the running session",
				},
			},
		},
		focusService:     focusService,
		studyService:     studyService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the focus command
func (c *FocusCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
	case "start":
		minutes, _ := intOption(options, "minutes")
		subjectID, _ := stringOption(options, "subject")
		embed, components = c.start(ctx, minutes, subjectID)
	case "stop":
		embed, components = c.stop(ctx)
	case "status":
		embed, components = c.status(ctx)
	default:
		return errors.New("unknown subcommand")
	}

	return RespondWithEphemeralEmbed(s, i, embed, components)
}

// Autocomplete suggests subjects for the subject option
func (c *FocusCommand) Autocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

func (c *FocusCommand) start(ctx context.Context, minutes int, subjectID string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	subjectName := ""
	if subjectID != "" {
		subjects, err := c.studyService.ListSubjects(ctx, &study.ListSubjectsInput{})
		if err != nil {
			log.Printf("Error listing subjects: %v", err)
			return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage), nil
		}
		subject := findSubject(subjectID, subjects.Subjects)
		if subject == nil {
			return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeNotFound), nil
		}
		subjectName = subject.Name
	}

	output, err := c.focusService.StartSession(ctx, &focus.StartSessionInput{
		DurationMinutes: minutes,
		SubjectID:       subjectID,
	})
	if err != nil {
		if errors.Is(err, focus.ErrInvalidDuration) {
			return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeInvalidDuration), nil
		}
		log.Printf("Error starting focus session: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage), nil
	}

	message, err := c.messagingService.GetSessionStartedMessage(ctx, &messaging.GetSessionStartedMessageInput{
		SubjectName:     subjectName,
		DurationMinutes: output.Session.DurationMinutes,
		Replaced:        output.Replaced,
	})
	if err != nil {
		log.Printf("Error getting session started message: %v", err)
		message = &messaging.GetSessionStartedMessageOutput{Title: "Focus session started"}
	}

	return renderSessionStarted(output.Session, subjectName, message)
}

func (c *FocusCommand) stop(ctx context.Context) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	output, err := c.focusService.StopSession(ctx, &focus.StopSessionInput{})
	if err != nil {
		log.Printf("Error stopping focus session: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage), nil
	}

	if !output.Stopped {
		return renderSessionStatus(output.Session, 0, "")
	}

	return c.renderStop(ctx, output, false)
}

func (c *FocusCommand) status(ctx context.Context) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	output, err := c.focusService.ResumeSession(ctx, &focus.ResumeSessionInput{})
	if err != nil {
		log.Printf("Error resuming focus session: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage), nil
	}

	if output.AutoStopped && output.Stop != nil {
		return c.renderStop(ctx, output.Stop, true)
	}

	return renderSessionStatus(output.Session, output.Remaining, c.subjectName(ctx, output.Session.SubjectID))
}

func (c *FocusCommand) renderStop(ctx context.Context, output *focus.StopSessionOutput, autoStopped bool) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	subjectName := c.subjectName(ctx, output.SubjectID)

	message, err := c.messagingService.GetSessionStoppedMessage(ctx, &messaging.GetSessionStoppedMessageInput{
		SubjectName:      subjectName,
		CreditedMinutes:  output.CreditedMinutes,
		DurationMinutes:  output.Session.DurationMinutes,
		AutoStopped:      autoStopped,
		FailedAggregates: output.FailedAggregates,
	})
	if err != nil {
		log.Printf("Error getting session stopped message: %v", err)
		message = &messaging.GetSessionStoppedMessageOutput{Title: "Session stopped"}
	}

	return renderSessionStopped(output.CreditedMinutes, subjectName, message, output.Session.DurationMinutes)
}

// subjectName resolves a subject id for display; empty when there is no subject
func (c *FocusCommand) subjectName(ctx context.Context, subjectID string) string {
	if subjectID == "" {
		return ""
	}

	subjects, err := c.studyService.ListSubjects(ctx, &study.ListSubjectsInput{})
	if err != nil {
		log.Printf("Error listing subjects: %v", err)
		return study.UnknownSubjectLabel
	}

	return subjectLabel(subjectID, subjects.Subjects)
}
