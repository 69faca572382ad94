package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	t.Run("generates ID with prefix", func(t *testing.T) {
		id := NewID("act")
		assert.True(t, strings.HasPrefix(id, "act_"))
		assert.Len(t, id, len("act_")+26)
	})

	t.Run("lowercases and trims the prefix", func(t *testing.T) {
		id := NewID("  EXC ")
		assert.True(t, strings.HasPrefix(id, "exc_"))
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewID("act")
			assert.False(t, seen[id], "duplicate ID generated: %s", id)
			seen[id] = true
		}
	})

	t.Run("panics on empty prefix", func(t *testing.T) {
		assert.Panics(t, func() { NewID("") })
		assert.Panics(t, func() { NewID("   ") })
	})
}

func TestIsValidID(t *testing.T) {
	t.Run("accepts generated IDs", func(t *testing.T) {
		assert.True(t, IsValidID(NewID("act")))
		assert.True(t, IsValidID(NewID("gl")))
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		assert.False(t, IsValidID(""))
		assert.False(t, IsValidID("act"))
		assert.False(t, IsValidID("act_tooshort"))
		assert.False(t, IsValidID("ACT_01G0EZ1XTM37C5X11SQTDNCTM1"))
		assert.False(t, IsValidID("a_b_c"))
	})
}
