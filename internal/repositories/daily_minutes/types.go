package daily_minutes

// GetMinutesInput contains parameters for reading today's minutes
type GetMinutesInput struct {
	AccountID string
}

// SetMinutesInput contains parameters for overwriting today's minutes
type SetMinutesInput struct {
	AccountID string
	Minutes   int
}

// AddMinutesInput contains parameters for crediting today's minutes
type AddMinutesInput struct {
	AccountID string
	Minutes   int
}
