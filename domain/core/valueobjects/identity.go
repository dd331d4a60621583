package valueobjects

import (
	"strconv"

	"github.com/google/uuid"
)

// DefaultUserID is the single principal that owns user-scoped records.
const DefaultUserID = "default_user"

// SystemPrincipal is recorded as the audit actor for unauthenticated writes.
const SystemPrincipal = "system"

// NewID returns a random identity rendered as a canonical UUID string.
func NewID() string {
	return uuid.New().String()
}

// IsUUID reports whether s is a canonical UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IDFromNumber renders a legacy numeric identity as an opaque string id.
func IDFromNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}
