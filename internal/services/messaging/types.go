package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneGentle is used when a session ends early or something went wrong
	ToneGentle MessageTone = "gentle"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeInvalidDuration = "invalid_duration"
	ErrorTypeInvalidName     = "invalid_name"
	ErrorTypeInvalidCategory = "invalid_category"
	ErrorTypeNotFound        = "not_found"
	ErrorTypeStorage         = "storage"
)

// GetSessionStartedMessageInput contains parameters for a session start message
type GetSessionStartedMessageInput struct {
	// SubjectName is empty for a session without a subject
	SubjectName string

	DurationMinutes int

	// Replaced indicates a running session was overwritten without credit
	Replaced bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetSessionStartedMessageOutput contains the generated start message
type GetSessionStartedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetSessionStoppedMessageInput contains parameters for a session stop message
type GetSessionStoppedMessageInput struct {
	SubjectName     string
	CreditedMinutes int
	DurationMinutes int

	// AutoStopped indicates the session ran to its planned end
	AutoStopped bool

	// FailedAggregates lists the totals that could not be updated
	FailedAggregates []string
}

// GetSessionStoppedMessageOutput contains the generated stop message
type GetSessionStoppedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetSummaryMessageInput contains parameters for a progress summary comment
type GetSummaryMessageInput struct {
	TodayMinutes  int
	WeeklyMinutes int
}

// GetSummaryMessageOutput contains the generated summary comment
type GetSummaryMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is one of the ErrorType constants
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// Config contains configuration for the messaging service
type Config struct {
	// Optional seed for testing
	Seed int64
}
