package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/flowly/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// ShortSuffix returns the first n hex characters of a generated UUID.
// Used to build ids of the form "<unix-millis>-<suffix>".
func ShortSuffix(gen UUID, n int) string {
	raw := strings.ReplaceAll(gen.NewUUID(), "-", "")
	if n <= 0 || n > len(raw) {
		return raw
	}
	return raw[:n]
}
