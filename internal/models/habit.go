package models

// Habit is a recurring study habit that can be checked off each day
type Habit struct {
	// ID is the unique identifier for the habit
	ID string

	// Name is the display name
	Name string

	// Category is a free-form grouping label
	Category string
}

// HabitsToday is the check-off state of the current day
type HabitsToday struct {
	// Habits is the habit list the day was started with
	Habits []*Habit

	// CompletedIDs holds the ids of habits checked off today
	CompletedIDs []string
}

// IsCompleted reports whether the habit was checked off today
func (h *HabitsToday) IsCompleted(habitID string) bool {
	for _, id := range h.CompletedIDs {
		if id == habitID {
			return true
		}
	}
	return false
}

// DefaultHabits returns the habit list a new account starts with
func DefaultHabits() []*Habit {
	return []*Habit{
		{ID: "1", Name: "Matemática", Category: "estudo"},
		{ID: "2", Name: "Português", Category: "estudo"},
		{ID: "3", Name: "História", Category: "estudo"},
		{ID: "4", Name: "Inglês", Category: "estudo"},
	}
}
