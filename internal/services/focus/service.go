package focus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/common/keylock"
	"github.com/KirkDiggler/flowly/internal/common/logging"
	"github.com/KirkDiggler/flowly/internal/models"
	dailyRepo "github.com/KirkDiggler/flowly/internal/repositories/daily_minutes"
	sessionRepo "github.com/KirkDiggler/flowly/internal/repositories/focus_session"
	subjectRepo "github.com/KirkDiggler/flowly/internal/repositories/subject"
	weeklyRepo "github.com/KirkDiggler/flowly/internal/repositories/weekly_summary"
)

const serviceName = "focus"

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	dailyRepo       dailyRepo.Repository
	subjectRepo     subjectRepo.Repository
	weeklyRepo      weeklyRepo.Repository
	clock           clock.Clock
	accounts        account.Resolver
	logger          *slog.Logger
	defaultDuration int

	// Start and stop hold the account's lock so a stop cannot credit a
	// session that a concurrent start is replacing.
	locks keylock.Locker
}

// New creates a new focus service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.DailyMinutesRepo == nil {
		return nil, ErrNilDailyMinutesRepo
	}

	if cfg.SubjectRepo == nil {
		return nil, ErrNilSubjectRepo
	}

	if cfg.WeeklySummaryRepo == nil {
		return nil, ErrNilWeeklyRepo
	}

	if cfg.DefaultDurationMinutes < 0 {
		return nil, ErrInvalidDuration
	}

	svc := &service{
		sessionRepo:     cfg.SessionRepo,
		dailyRepo:       cfg.DailyMinutesRepo,
		subjectRepo:     cfg.SubjectRepo,
		weeklyRepo:      cfg.WeeklySummaryRepo,
		clock:           cfg.Clock,
		accounts:        cfg.AccountResolver,
		logger:          cfg.Logger,
		defaultDuration: cfg.DefaultDurationMinutes,
	}

	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}
	if svc.accounts == nil {
		svc.accounts = account.ContextResolver{}
	}
	if svc.defaultDuration == 0 {
		svc.defaultDuration = models.DefaultFocusMinutes
	}

	return svc, nil
}

// InitializeSession materializes the idle session if the account has none
func (s *service) InitializeSession(ctx context.Context, input *InitializeSessionInput) (*InitializeSessionOutput, error) {
	accountID := account.OrLocal(ctx, s.accounts)

	output, err := s.sessionRepo.InitializeState(ctx, &sessionRepo.InitializeStateInput{
		AccountID: accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize focus session: %w", err)
	}

	return &InitializeSessionOutput{
		Session: output.State,
		Created: output.Created,
	}, nil
}

// StartSession begins a focus session. A running session is overwritten
// without crediting its time.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		input = &StartSessionInput{}
	}

	if input.DurationMinutes < 0 {
		return nil, ErrInvalidDuration
	}

	duration := input.DurationMinutes
	if duration == 0 {
		duration = s.defaultDuration
	}

	accountID := account.OrLocal(ctx, s.accounts)
	unlock := s.locks.Lock(accountID)
	defer unlock()

	logger := logging.ServiceLogger(ctx, s.logger, serviceName, "StartSession", "account", accountID)

	replaced := false
	current, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{AccountID: accountID})
	if err != nil {
		logger.Warn("could not read current session before start", "error", err)
	} else if current.IsRunning() {
		replaced = true
		logger.Info("replacing running session",
			"started_at", current.StartedAt,
			"subject_id", current.SubjectID)
	}

	session := &models.FocusSession{
		Running:         true,
		StartedAt:       s.clock.Now().Truncate(time.Millisecond),
		DurationMinutes: duration,
		SubjectID:       input.SubjectID,
	}

	if err := s.sessionRepo.SaveState(ctx, &sessionRepo.SaveStateInput{
		AccountID: accountID,
		State:     session,
	}); err != nil {
		return nil, fmt.Errorf("failed to start focus session: %w", err)
	}

	return &StartSessionOutput{
		Session:  session,
		Replaced: replaced,
	}, nil
}

// StopSession ends the running session and credits its minutes to today's
// total, the subject and the weekly history. Write failures are logged and
// reported in the output; they never fail the call.
func (s *service) StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error) {
	accountID := account.OrLocal(ctx, s.accounts)
	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.stop(ctx, accountID), nil
}

// stop must be called with the account's lock held
func (s *service) stop(ctx context.Context, accountID string) *StopSessionOutput {
	logger := logging.ServiceLogger(ctx, s.logger, serviceName, "StopSession", "account", accountID)

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{AccountID: accountID})
	if err != nil {
		logger.Error("failed to read focus session", "error", err)
		return &StopSessionOutput{
			Session: models.IdleFocusSession(s.defaultDuration),
		}
	}

	// Stopping an idle session is a no-op
	if !state.IsRunning() {
		return &StopSessionOutput{Session: state}
	}

	output := &StopSessionOutput{
		Stopped:         true,
		CreditedMinutes: CreditedMinutes(state.StartedAt, s.clock.Now(), state.DurationMinutes),
		SubjectID:       state.SubjectID,
	}

	if output.CreditedMinutes > 0 {
		s.credit(ctx, logger, accountID, output)
	}

	idle := models.IdleFocusSession(state.DurationMinutes)
	if err := s.sessionRepo.SaveState(ctx, &sessionRepo.SaveStateInput{
		AccountID: accountID,
		State:     idle,
	}); err != nil {
		logger.Error("failed to reset focus session after stop", "error", err)
		output.FailedAggregates = append(output.FailedAggregates, AggregateSession)
	}
	output.Session = idle

	return output
}

// credit fans the stopped session's minutes out to the three aggregates.
// Each write is independent; one failing does not skip the others.
func (s *service) credit(ctx context.Context, logger *slog.Logger, accountID string, output *StopSessionOutput) {
	minutes := output.CreditedMinutes

	if _, err := s.dailyRepo.AddMinutes(ctx, &dailyRepo.AddMinutesInput{
		AccountID: accountID,
		Minutes:   minutes,
	}); err != nil {
		logger.Error("failed to credit today's minutes", "minutes", minutes, "error", err)
		output.FailedAggregates = append(output.FailedAggregates, AggregateDailyMinutes)
	}

	if output.SubjectID != "" {
		credited, err := s.subjectRepo.CreditMinutes(ctx, &subjectRepo.CreditMinutesInput{
			AccountID: accountID,
			SubjectID: output.SubjectID,
			Minutes:   minutes,
		})
		switch {
		case err != nil:
			logger.Error("failed to credit subject", "subject_id", output.SubjectID, "minutes", minutes, "error", err)
			output.FailedAggregates = append(output.FailedAggregates, AggregateSubject)
		case !credited.Found:
			logger.Debug("subject no longer exists", "subject_id", output.SubjectID)
		default:
			output.SubjectFound = true
		}
	}

	// Weekly history is only kept for a resolved account
	weeklyAccount, ok := s.accounts.CurrentAccount(ctx)
	if !ok {
		return
	}

	if _, err := s.weeklyRepo.AddEntry(ctx, &weeklyRepo.AddEntryInput{
		AccountID: weeklyAccount,
		SubjectID: output.SubjectID,
		Minutes:   minutes,
	}); err != nil {
		logger.Error("failed to credit weekly summary", "subject_id", output.SubjectID, "minutes", minutes, "error", err)
		output.FailedAggregates = append(output.FailedAggregates, AggregateWeeklySummary)
	}
}

// GetSessionState returns the current session, or the idle state if it cannot be read
func (s *service) GetSessionState(ctx context.Context, input *GetSessionStateInput) (*GetSessionStateOutput, error) {
	accountID := account.OrLocal(ctx, s.accounts)

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{AccountID: accountID})
	if err != nil {
		logging.ServiceLogger(ctx, s.logger, serviceName, "GetSessionState", "account", accountID).
			Error("failed to read focus session", "error", err)
		return &GetSessionStateOutput{
			Session: models.IdleFocusSession(s.defaultDuration),
		}, nil
	}

	output := &GetSessionStateOutput{Session: state}
	if remaining := RemainingTime(state, s.clock.Now()); remaining > 0 {
		output.Remaining = remaining
	}

	return output, nil
}

// ResumeSession recovers a session after a restart. A running session whose
// planned time has passed is stopped and credited; otherwise the remaining
// countdown is reported.
func (s *service) ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error) {
	accountID := account.OrLocal(ctx, s.accounts)
	unlock := s.locks.Lock(accountID)
	defer unlock()

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{AccountID: accountID})
	if err != nil {
		logging.ServiceLogger(ctx, s.logger, serviceName, "ResumeSession", "account", accountID).
			Error("failed to read focus session", "error", err)
		return &ResumeSessionOutput{
			Session: models.IdleFocusSession(s.defaultDuration),
		}, nil
	}

	if !state.IsRunning() {
		return &ResumeSessionOutput{Session: state}, nil
	}

	remaining := RemainingTime(state, s.clock.Now())
	if remaining > 0 {
		return &ResumeSessionOutput{
			Session:   state,
			Remaining: remaining,
		}, nil
	}

	stopped := s.stop(ctx, accountID)
	return &ResumeSessionOutput{
		Session:     stopped.Session,
		AutoStopped: true,
		Stop:        stopped,
	}, nil
}

// ResetSession forces the default idle state without crediting anything
func (s *service) ResetSession(ctx context.Context, input *ResetSessionInput) error {
	accountID := account.OrLocal(ctx, s.accounts)
	unlock := s.locks.Lock(accountID)
	defer unlock()

	if err := s.sessionRepo.SaveState(ctx, &sessionRepo.SaveStateInput{
		AccountID: accountID,
		State:     models.IdleFocusSession(models.DefaultFocusMinutes),
	}); err != nil {
		return fmt.Errorf("failed to reset focus session: %w", err)
	}

	return nil
}
