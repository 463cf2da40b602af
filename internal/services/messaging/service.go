package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *Config) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetSessionStartedMessage returns a message for when a focus session starts
func (s *service) GetSessionStartedMessage(ctx context.Context, input *GetSessionStartedMessageInput) (*GetSessionStartedMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneEncouraging
	}

	target := "your session"
	if input.SubjectName != "" {
		target = input.SubjectName
	}

	messages := []string{
		fmt.Sprintf("%d minutes on %s. Phone face down, let's go.", input.DurationMinutes, target),
		fmt.Sprintf("Timer's running: %d minutes of %s. You've got this.", input.DurationMinutes, target),
		fmt.Sprintf("Focus mode on. %d minutes for %s starts now.", input.DurationMinutes, target),
		fmt.Sprintf("Deep breath. %d minutes, just %s.", input.DurationMinutes, target),
	}

	message := s.pick(messages)
	if input.Replaced {
		message = "The previous session was discarded without credit. " + message
	}

	return &GetSessionStartedMessageOutput{
		Title:   "Focus session started",
		Message: message,
		Tone:    tone,
	}, nil
}

// GetSessionStoppedMessage returns a message for when a focus session ends
func (s *service) GetSessionStoppedMessage(ctx context.Context, input *GetSessionStoppedMessageInput) (*GetSessionStoppedMessageOutput, error) {
	var messages []string
	var title string
	var tone MessageTone

	switch {
	case input.CreditedMinutes <= 0:
		title = "Session stopped"
		tone = ToneGentle
		messages = []string{
			"Stopped before the first minute, so nothing was credited. Try again when you're ready.",
			"No minutes this time. Even sitting down counts, give it another go.",
		}
	case input.AutoStopped || (input.DurationMinutes > 0 && input.CreditedMinutes >= input.DurationMinutes):
		title = "Session complete"
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("Full %d minutes done! 🎉 Take a short break.", input.CreditedMinutes),
			fmt.Sprintf("That's %d minutes in the bank. Stretch, hydrate, come back.", input.CreditedMinutes),
			fmt.Sprintf("Session finished: %d minutes. Nicely done.", input.CreditedMinutes),
		}
	default:
		title = "Session stopped"
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%d minutes credited. Every minute adds up.", input.CreditedMinutes),
			fmt.Sprintf("Stopped at %d minutes. That still counts.", input.CreditedMinutes),
			fmt.Sprintf("Logged %d minutes. Pick it back up whenever you like.", input.CreditedMinutes),
		}
	}

	message := s.pick(messages)
	if input.SubjectName != "" && input.CreditedMinutes > 0 {
		message = fmt.Sprintf("%s: %s", input.SubjectName, message)
	}

	if len(input.FailedAggregates) > 0 {
		tone = ToneGentle
		message += fmt.Sprintf("\n⚠️ Some totals could not be updated (%s).", strings.Join(input.FailedAggregates, ", "))
	}

	return &GetSessionStoppedMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}

// GetSummaryMessage returns a comment on the account's progress
func (s *service) GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error) {
	var messages []string

	switch {
	case input.TodayMinutes == 0 && input.WeeklyMinutes == 0:
		messages = []string{
			"A clean slate. Start a session and get the week going.",
			"Nothing logged yet this week. The first 25 minutes are the hardest.",
		}
	case input.TodayMinutes == 0:
		messages = []string{
			fmt.Sprintf("%d minutes this week so far. Today is still open.", input.WeeklyMinutes),
			"Good week so far. Add a session today to keep it rolling.",
		}
	case input.TodayMinutes >= 120:
		messages = []string{
			fmt.Sprintf("%d minutes today. That's a serious study day! 🔥", input.TodayMinutes),
			fmt.Sprintf("Over two hours today (%d minutes). Remember to rest too.", input.TodayMinutes),
		}
	default:
		messages = []string{
			fmt.Sprintf("%d minutes today and counting.", input.TodayMinutes),
			fmt.Sprintf("Steady progress: %d minutes today, %d this week.", input.TodayMinutes, input.WeeklyMinutes),
			"Consistency beats intensity. Keep showing up.",
		}
	}

	return &GetSummaryMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneGentle
	}

	var messages []string

	switch input.ErrorType {
	case ErrorTypeInvalidDuration:
		messages = []string{
			"The duration has to be a positive number of minutes.",
			"That duration doesn't work. Try something like 25.",
		}
	case ErrorTypeInvalidName:
		messages = []string{
			"The name can't be empty.",
			"Give it a name first, then try again.",
		}
	case ErrorTypeInvalidCategory:
		messages = []string{
			"Unknown category. Pick one from the list.",
		}
	case ErrorTypeNotFound:
		messages = []string{
			"I couldn't find that one. It may have been removed.",
			"Nothing with that id here. Check the list and try again.",
		}
	case ErrorTypeStorage:
		messages = []string{
			"I couldn't save that right now. Please try again in a moment.",
			"Storage hiccup. Nothing was lost, but try again shortly.",
		}
	default:
		messages = []string{
			"Something went wrong. Please try again.",
			"That didn't work. Give it another try.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
