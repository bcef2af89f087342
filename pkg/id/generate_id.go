package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes):
// a random v4 UUID with the hyphens stripped.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
