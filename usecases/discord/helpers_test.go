package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guildpulse/models"
)

func TestFormatExclusionsTable(t *testing.T) {
	t.Run("EmptyListYieldsNoResults", func(t *testing.T) {
		assert.Equal(t, "no results", formatExclusionsTable("userId", nil))
	})

	t.Run("ListsSubjectAndDate", func(t *testing.T) {
		date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		got := formatExclusionsTable("userId", []*models.Exclusion{
			{SubjectID: "user1", Date: date},
			{SubjectID: "user2", Date: date},
		})
		assert.Equal(t, "userId - date\nuser1 - 2024-03-15\nuser2 - 2024-03-15\n", got)
	})
}

func TestFormatLeaderboard(t *testing.T) {
	t.Run("EmptyListYieldsNoResults", func(t *testing.T) {
		assert.Equal(t, "no results", formatLeaderboard(nil))
	})

	t.Run("ListsUserAndScore", func(t *testing.T) {
		got := formatLeaderboard([]*models.ActivityRecord{
			{UserID: "user1", ActivityScore: 42},
		})
		assert.Equal(t, "userId - score\nuser1 - 42\n", got)
	})
}

func TestFormatGuildLinks(t *testing.T) {
	t.Run("EmptyListYieldsNoResults", func(t *testing.T) {
		assert.Equal(t, "no results", formatGuildLinks(nil))
	})

	t.Run("ListsNameAndURL", func(t *testing.T) {
		got := formatGuildLinks([]*models.GuildLink{
			{Name: "store", URL: "https://example.com/store"},
			{Name: "wiki", URL: "https://example.com/wiki"},
		})
		assert.Equal(t, "name - url\nstore - https://example.com/store\nwiki - https://example.com/wiki\n", got)
	})
}
