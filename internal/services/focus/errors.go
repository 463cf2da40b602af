package focus

// FocusError is a custom error type for focus session errors
type FocusError string

// Error implements the error interface
func (e FocusError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDuration     FocusError = "duration minutes cannot be negative"
	ErrNilConfig           FocusError = "config cannot be nil"
	ErrNilSessionRepo      FocusError = "focus session repository cannot be nil"
	ErrNilDailyMinutesRepo FocusError = "daily minutes repository cannot be nil"
	ErrNilSubjectRepo      FocusError = "subject repository cannot be nil"
	ErrNilWeeklyRepo       FocusError = "weekly summary repository cannot be nil"
)
