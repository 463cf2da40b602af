package study

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/common/logging"
	"github.com/KirkDiggler/flowly/internal/models"
	dailyRepo "github.com/KirkDiggler/flowly/internal/repositories/daily_minutes"
	sessionRepo "github.com/KirkDiggler/flowly/internal/repositories/focus_session"
	subjectRepo "github.com/KirkDiggler/flowly/internal/repositories/subject"
	weeklyRepo "github.com/KirkDiggler/flowly/internal/repositories/weekly_summary"
)

const serviceName = "study"

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	dailyRepo   dailyRepo.Repository
	subjectRepo subjectRepo.Repository
	weeklyRepo  weeklyRepo.Repository
	clock       clock.Clock
	accounts    account.Resolver
	logger      *slog.Logger
}

// New creates a new study service
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

	svc := &service{
		sessionRepo: cfg.SessionRepo,
		dailyRepo:   cfg.DailyMinutesRepo,
		subjectRepo: cfg.SubjectRepo,
		weeklyRepo:  cfg.WeeklySummaryRepo,
		clock:       cfg.Clock,
		accounts:    cfg.AccountResolver,
		logger:      cfg.Logger,
	}

	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}
	if svc.accounts == nil {
		svc.accounts = account.ContextResolver{}
	}

	return svc, nil
}

// ListSubjects returns the account's subjects, or none if they cannot be read
func (s *service) ListSubjects(ctx context.Context, input *ListSubjectsInput) (*ListSubjectsOutput, error) {
	accountID := account.OrLocal(ctx, s.accounts)

	subjects, err := s.subjectRepo.ListSubjects(ctx, &subjectRepo.ListSubjectsInput{AccountID: accountID})
	if err != nil {
		logging.ServiceLogger(ctx, s.logger, serviceName, "ListSubjects", "account", accountID).
			Error("failed to list subjects", "error", err)
		return &ListSubjectsOutput{Subjects: []*models.Subject{}}, nil
	}

	return &ListSubjectsOutput{Subjects: subjects}, nil
}

// CreateSubject adds a subject. Store failures are returned so the caller
// can ask the user to retry.
func (s *service) CreateSubject(ctx context.Context, input *CreateSubjectInput) (*CreateSubjectOutput, error) {
	if input == nil {
		return nil, ErrInvalidSubjectName
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidSubjectName
	}

	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	subject, err := s.subjectRepo.CreateSubject(ctx, &subjectRepo.CreateSubjectInput{
		AccountID: account.OrLocal(ctx, s.accounts),
		Name:      name,
		Category:  input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	return &CreateSubjectOutput{Subject: subject}, nil
}

// UpdateSubject renames and/or recategorizes a subject. An unknown id is not
// an error; the output reports it as not found.
func (s *service) UpdateSubject(ctx context.Context, input *UpdateSubjectInput) (*UpdateSubjectOutput, error) {
	if input == nil {
		return &UpdateSubjectOutput{}, nil
	}

	update := &subjectRepo.UpdateSubjectInput{
		AccountID: account.OrLocal(ctx, s.accounts),
		SubjectID: input.SubjectID,
		Category:  input.Category,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidSubjectName
		}
		update.Name = &name
	}

	if input.Category != nil && !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	output, err := s.subjectRepo.UpdateSubject(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}

	return &UpdateSubjectOutput{
		Subject: output.Subject,
		Found:   output.Found,
	}, nil
}

// RemoveSubject deletes a subject. Sessions and weekly entries that still
// reference it are left alone.
func (s *service) RemoveSubject(ctx context.Context, input *RemoveSubjectInput) (*RemoveSubjectOutput, error) {
	if input == nil {
		return &RemoveSubjectOutput{}, nil
	}

	accountID := account.OrLocal(ctx, s.accounts)

	output, err := s.subjectRepo.RemoveSubject(ctx, &subjectRepo.RemoveSubjectInput{
		AccountID: accountID,
		SubjectID: input.SubjectID,
	})
	if err != nil {
		logging.ServiceLogger(ctx, s.logger, serviceName, "RemoveSubject", "account", accountID).
			Error("failed to remove subject", "subject_id", input.SubjectID, "error", err)
		return &RemoveSubjectOutput{}, nil
	}

	return &RemoveSubjectOutput{Found: output.Found}, nil
}

// GetTodayMinutes returns the minutes studied today, or 0 if they cannot be read
func (s *service) GetTodayMinutes(ctx context.Context, input *GetTodayMinutesInput) (*GetTodayMinutesOutput, error) {
	accountID := account.OrLocal(ctx, s.accounts)

	minutes, err := s.dailyRepo.GetMinutes(ctx, &dailyRepo.GetMinutesInput{AccountID: accountID})
	if err != nil {
		logging.ServiceLogger(ctx, s.logger, serviceName, "GetTodayMinutes", "account", accountID).
			Error("failed to read today's minutes", "error", err)
		return &GetTodayMinutesOutput{Minutes: 0}, nil
	}

	return &GetTodayMinutesOutput{Minutes: minutes}, nil
}

// GetWeeklySummary returns the weekly history of the resolved account. With
// no account, or when it cannot be read, the summary is empty.
func (s *service) GetWeeklySummary(ctx context.Context, input *GetWeeklySummaryInput) (*GetWeeklySummaryOutput, error) {
	return &GetWeeklySummaryOutput{Summary: s.weeklySummary(ctx)}, nil
}

func (s *service) weeklySummary(ctx context.Context) *models.WeeklySummary {
	accountID, ok := s.accounts.CurrentAccount(ctx)
	if !ok {
		return s.emptySummary()
	}

	summary, err := s.weeklyRepo.GetSummary(ctx, &weeklyRepo.GetSummaryInput{AccountID: accountID})
	if err != nil {
		logging.ServiceLogger(ctx, s.logger, serviceName, "GetWeeklySummary", "account", accountID).
			Error("failed to read weekly summary", "error", err)
		return s.emptySummary()
	}

	return summary
}

func (s *service) emptySummary() *models.WeeklySummary {
	return &models.WeeklySummary{
		Subjects:  []*models.WeeklySubjectMinutes{},
		UpdatedAt: s.clock.Now().Truncate(time.Millisecond),
	}
}

// GetWeeklyReport joins the weekly history with subject names and orders
// it by minutes, most first.
func (s *service) GetWeeklyReport(ctx context.Context, input *GetWeeklyReportInput) (*GetWeeklyReportOutput, error) {
	summary := s.weeklySummary(ctx)

	listed, err := s.ListSubjects(ctx, &ListSubjectsInput{})
	if err != nil {
		return nil, err
	}

	return &GetWeeklyReportOutput{
		Entries:      BuildWeeklyReport(summary, listed.Subjects),
		TotalMinutes: summary.TotalMinutes(),
		Summary:      summary,
	}, nil
}

// BuildWeeklyReport labels each weekly entry with its subject. Entries for
// deleted subjects keep their minutes under a placeholder label.
func BuildWeeklyReport(summary *models.WeeklySummary, subjects []*models.Subject) []*WeeklyReportEntry {
	byID := make(map[string]*models.Subject, len(subjects))
	for _, subject := range subjects {
		byID[subject.ID] = subject
	}

	entries := make([]*WeeklyReportEntry, 0, len(summary.Subjects))
	for _, item := range summary.Subjects {
		entry := &WeeklyReportEntry{
			SubjectID: item.SubjectID,
			Minutes:   item.Minutes,
		}

		switch subject, ok := byID[item.SubjectID]; {
		case item.SubjectID == "":
			entry.Label = NoSpecificSubjectLabel
		case ok:
			entry.Label = subject.Name
			entry.Category = subject.Category
		default:
			entry.Label = UnknownSubjectLabel
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Minutes > entries[j].Minutes
	})

	return entries
}

// ResetAccount clears today's minutes, the focus session, the subjects and
// the weekly history, in that order. The first failure is returned.
func (s *service) ResetAccount(ctx context.Context, input *ResetAccountInput) error {
	accountID := account.OrLocal(ctx, s.accounts)

	if err := s.dailyRepo.SetMinutes(ctx, &dailyRepo.SetMinutesInput{
		AccountID: accountID,
		Minutes:   0,
	}); err != nil {
		return fmt.Errorf("failed to reset today's minutes: %w", err)
	}

	if err := s.sessionRepo.SaveState(ctx, &sessionRepo.SaveStateInput{
		AccountID: accountID,
		State:     models.IdleFocusSession(models.DefaultFocusMinutes),
	}); err != nil {
		return fmt.Errorf("failed to reset focus session: %w", err)
	}

	if err := s.subjectRepo.ResetSubjects(ctx, &subjectRepo.ResetSubjectsInput{
		AccountID: accountID,
	}); err != nil {
		return fmt.Errorf("failed to reset subjects: %w", err)
	}

	weeklyAccount, ok := s.accounts.CurrentAccount(ctx)
	if !ok {
		return nil
	}

	if err := s.weeklyRepo.DeleteSummary(ctx, &weeklyRepo.DeleteSummaryInput{
		AccountID: weeklyAccount,
	}); err != nil {
		return fmt.Errorf("failed to reset weekly summary: %w", err)
	}

	logging.ServiceLogger(ctx, s.logger, serviceName, "ResetAccount", "account", accountID).
		Info("account study data reset")

	return nil
}
