package core

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"guildpulse/utils"
)

// NewID generates a new ULID with the specified prefix.
// The resulting ID follows the format: prefix_ULID
// Example: NewID("act") returns "act_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewID(prefix string) string {
	utils.AssertInvariant(strings.TrimSpace(prefix) != "", "prefix cannot be empty")

	cleanPrefix := strings.TrimSpace(strings.ToLower(prefix))
	id := ulid.Make()

	return fmt.Sprintf("%s_%s", cleanPrefix, id.String())
}

// IsValidID checks whether the given string is a prefixed ULID as produced by NewID.
func IsValidID(id string) bool {
	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		return false
	}

	prefix, ulidPart := parts[0], parts[1]
	if prefix == "" {
		return false
	}
	for _, r := range prefix {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}

	if len(ulidPart) != 26 {
		return false
	}
	_, err := ulid.Parse(ulidPart)
	return err == nil
}
