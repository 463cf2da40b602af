package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/flowly/internal/models"
	"github.com/KirkDiggler/flowly/internal/services/habit"
	"github.com/KirkDiggler/flowly/internal/services/messaging"
	"github.com/KirkDiggler/flowly/internal/services/study"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorFocus   = 0x5865f2
	colorSuccess = 0x00ff00
	colorIdle    = 0x808080
	colorError   = 0xff0000
)

// Discord limits
const (
	maxChoices       = 25
	maxButtonsPerRow = 5
	maxButtonRows    = 5
)

// formatMinutes renders a minute count as "45m" or "1h 05m"
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// formatRemaining renders a countdown as "mm:ss", or "h:mm:ss" past an hour
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours, minutes, seconds := total/3600, (total%3600)/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// subjectLabel names a subject id using the registry, if it is still there
func subjectLabel(subjectID string, subjects []*models.Subject) string {
	if subjectID == "" {
		return study.NoSpecificSubjectLabel
	}
	if subject := findSubject(subjectID, subjects); subject != nil {
		return subject.Name
	}
	return study.UnknownSubjectLabel
}

func findSubject(subjectID string, subjects []*models.Subject) *models.Subject {
	for _, subject := range subjects {
		if subject.ID == subjectID {
			return subject
		}
	}
	return nil
}

func stopButton() discordgo.Button {
	return discordgo.Button{
		Label:    "Stop",
		Style:    discordgo.DangerButton,
		CustomID: ButtonStopSession,
		Emoji: &discordgo.ComponentEmoji{
			Name: "⏹️",
		},
	}
}

func startButton(durationMinutes int) discordgo.Button {
	return discordgo.Button{
		Label:    fmt.Sprintf("Start %d min", durationMinutes),
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonStartSession,
		Emoji: &discordgo.ComponentEmoji{
			Name: "▶️",
		},
	}
}

func actionRow(buttons ...discordgo.MessageComponent) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// renderSessionStarted renders the response to a started session
func renderSessionStarted(session *models.FocusSession, subjectName string, message *messaging.GetSessionStartedMessageOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if subjectName == "" {
		subjectName = study.NoSpecificSubjectLabel
	}

	ends := session.StartedAt.Add(session.PlannedDuration())

	embed := &discordgo.MessageEmbed{
		Title:       message.Title,
		Description: message.Message,
		Color:       colorFocus,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duration", Value: formatMinutes(session.DurationMinutes), Inline: true},
			{Name: "Subject", Value: subjectName, Inline: true},
			{Name: "Ends", Value: fmt.Sprintf("<t:%d:R>", ends.Unix()), Inline: true},
		},
	}

	return embed, actionRow(stopButton())
}

// renderSessionStatus renders the current timer, offering the matching action
func renderSessionStatus(session *models.FocusSession, remaining time.Duration, subjectName string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if !session.IsRunning() {
		embed := &discordgo.MessageEmbed{
			Title:       "No focus session running",
			Description: "Use `/focus start` or the button below to begin.",
			Color:       colorIdle,
		}
		return embed, actionRow(startButton(session.DurationMinutes))
	}

	if subjectName == "" {
		subjectName = study.NoSpecificSubjectLabel
	}

	embed := &discordgo.MessageEmbed{
		Title: "Focus session running",
		Color: colorFocus,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Remaining", Value: formatRemaining(remaining), Inline: true},
			{Name: "Duration", Value: formatMinutes(session.DurationMinutes), Inline: true},
			{Name: "Subject", Value: subjectName, Inline: true},
		},
	}

	return embed, actionRow(stopButton())
}

// renderSessionStopped renders the crediting result of a stopped session
func renderSessionStopped(creditedMinutes int, subjectName string, message *messaging.GetSessionStoppedMessageOutput, nextDuration int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	color := colorSuccess
	if message.Tone == messaging.ToneGentle {
		color = colorIdle
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Credited", Value: formatMinutes(creditedMinutes), Inline: true},
	}
	if subjectName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Subject", Value: subjectName, Inline: true})
	}

	embed := &discordgo.MessageEmbed{
		Title:       message.Title,
		Description: message.Message,
		Color:       color,
		Fields:      fields,
	}

	return embed, actionRow(startButton(nextDuration))
}

// renderSubjectList renders the subject registry grouped by category
func renderSubjectList(subjects []*models.Subject) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Subjects",
		Color: colorFocus,
	}

	if len(subjects) == 0 {
		embed.Description = "No subjects yet. Add one with `/subject add`."
		return embed
	}

	for _, category := range models.SubjectCategories {
		var lines []string
		for _, subject := range subjects {
			if subject.Category != category {
				continue
			}
			lines = append(lines, fmt.Sprintf("**%s** · %s · `%s`", subject.Name, formatMinutes(subject.TotalMinutes), subject.ID))
		}
		if len(lines) == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  string(category),
			Value: strings.Join(lines, "\n"),
		})
	}

	return embed
}

// renderSummary renders today's minutes and the weekly report
func renderSummary(todayMinutes int, report *study.GetWeeklyReportOutput, comment string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Study summary",
		Description: comment,
		Color:       colorFocus,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Today", Value: formatMinutes(todayMinutes), Inline: true},
			{Name: "This week", Value: formatMinutes(report.TotalMinutes), Inline: true},
		},
	}

	if len(report.Entries) > 0 {
		lines := make([]string, 0, len(report.Entries))
		for _, entry := range report.Entries {
			lines = append(lines, fmt.Sprintf("%s: %s", entry.Label, formatMinutes(entry.Minutes)))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "By subject",
			Value: strings.Join(lines, "\n"),
		})
	}

	if report.Summary != nil && !report.Summary.UpdatedAt.IsZero() && len(report.Entries) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Last credited"}
		embed.Timestamp = report.Summary.UpdatedAt.Format(time.RFC3339)
	}

	return embed
}

// renderHabitsToday renders today's habits with one toggle button each
func renderHabitsToday(today *habit.GetTodayOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Today's habits (%d/%d)", today.CompletedCount, len(today.Habits)),
		Color: colorFocus,
	}

	if len(today.Habits) == 0 {
		embed.Description = "No habits. Add one with `/habit add`."
		return embed, nil
	}

	lines := make([]string, 0, len(today.Habits))
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent

	for idx, item := range today.Habits {
		mark := "⬜"
		style := discordgo.SecondaryButton
		if item.Completed {
			mark = "✅"
			style = discordgo.SuccessButton
		}
		lines = append(lines, fmt.Sprintf("%s %s · `%s`", mark, item.Habit.Name, item.Habit.ID))

		if idx >= maxButtonsPerRow*maxButtonRows {
			continue
		}
		row = append(row, discordgo.Button{
			Label:    item.Habit.Name,
			Style:    style,
			CustomID: ButtonToggleHabitPrefix + item.Habit.ID,
		})
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}

	embed.Description = strings.Join(lines, "\n")
	return embed, rows
}

// subjectChoices filters subjects by a case-insensitive name match
func subjectChoices(subjects []*models.Subject, query string) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.ToLower(strings.TrimSpace(query))

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(subjects))
	for _, subject := range subjects {
		if query != "" && !strings.Contains(strings.ToLower(subject.Name), query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", subject.Name, subject.Category),
			Value: subject.ID,
		})
		if len(choices) == maxChoices {
			break
		}
	}
	return choices
}

// habitChoices filters habits by a case-insensitive name match
func habitChoices(habits []*models.Habit, query string) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.ToLower(strings.TrimSpace(query))

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(habits))
	for _, h := range habits {
		if query != "" && !strings.Contains(strings.ToLower(h.Name), query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  h.Name,
			Value: h.ID,
		})
		if len(choices) == maxChoices {
			break
		}
	}
	return choices
}

// errorEmbed renders a friendly error for the given messaging error type
func errorEmbed(ctx context.Context, messages messaging.Service, errorType string) *discordgo.MessageEmbed {
	text := "Something went wrong. Please try again."
	if output, err := messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType}); err == nil {
		text = output.Message
	}

	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: text,
		Color:       colorError,
	}
}
