package utils

import "github.com/google/uuid"

// GenerateID returns a prefixed random identifier, e.g. "event-<uuid>".
func GenerateID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
