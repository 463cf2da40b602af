package models

import (
	"time"
)

// WeeklySubjectMinutes is one entry of the weekly summary
type WeeklySubjectMinutes struct {
	// SubjectID is the credited subject; empty for time not tied to a subject
	SubjectID string

	// Minutes is the accumulated minutes for the subject
	Minutes int
}

// WeeklySummary aggregates focus minutes per subject for one account
type WeeklySummary struct {
	// Subjects holds at most one entry per subject id, in first-credit order
	Subjects []*WeeklySubjectMinutes

	// UpdatedAt is when the summary was last credited
	UpdatedAt time.Time
}

// TotalMinutes sums the minutes of every entry
func (w *WeeklySummary) TotalMinutes() int {
	if w == nil {
		return 0
	}
	total := 0
	for _, entry := range w.Subjects {
		total += entry.Minutes
	}
	return total
}
