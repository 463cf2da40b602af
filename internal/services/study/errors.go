package study

// StudyError is a custom error type for study errors
type StudyError string

// Error implements the error interface
func (e StudyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidSubjectName  StudyError = "subject name cannot be empty"
	ErrInvalidCategory     StudyError = "category must be faculdade, escola or outros"
	ErrNilConfig           StudyError = "config cannot be nil"
	ErrNilSessionRepo      StudyError = "focus session repository cannot be nil"
	ErrNilDailyMinutesRepo StudyError = "daily minutes repository cannot be nil"
	ErrNilSubjectRepo      StudyError = "subject repository cannot be nil"
	ErrNilWeeklyRepo       StudyError = "weekly summary repository cannot be nil"
)
