package discord

import (
	"context"
	"log"

	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// SummaryCommand handles the /summary command
type SummaryCommand struct {
	BaseCommand
	studyService     study.Service
	messagingService messaging.Service
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(studyService study.Service, messagingService messaging.Service) *SummaryCommand {
	return &SummaryCommand{
		BaseCommand: BaseCommand{
			Name:        "summary",
			Description: "Show today's minutes and the weekly breakdown",
		},
		studyService:     studyService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the summary command
func (c *SummaryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	return RespondWithEphemeralEmbed(s, i, c.summary(accountContext(i)), nil)
}

func (c *SummaryCommand) summary(ctx context.Context) *discordgo.MessageEmbed {
	today, err := c.studyService.GetTodayMinutes(ctx, &study.GetTodayMinutesInput{})
	if err != nil {
		log.Printf("Error getting today's minutes: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
	}

	report, err := c.studyService.GetWeeklyReport(ctx, &study.GetWeeklyReportInput{})
	if err != nil {
		log.Printf("Error getting weekly report: %v", err)
		return errorEmbed(ctx, c.messagingService, messaging.ErrorTypeStorage)
	}

	comment := ""
	if message, err := c.messagingService.GetSummaryMessage(ctx, &messaging.GetSummaryMessageInput{
		TodayMinutes:  today.Minutes,
		WeeklyMinutes: report.TotalMinutes,
	}); err == nil {
		comment = message.Message
	}

	return renderSummary(today.Minutes, report, comment)
}
