package habit

// HabitError is a custom error type for habit errors
type HabitError string

// Error implements the error interface
func (e HabitError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidHabitName HabitError = "habit name cannot be empty"
	ErrHabitNotFound    HabitError = "habit not found"
	ErrNilConfig        HabitError = "config cannot be nil"
	ErrNilHabitRepo     HabitError = "habit repository cannot be nil"
)
