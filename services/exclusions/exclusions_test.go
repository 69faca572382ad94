package exclusions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildpulse/core"
	"guildpulse/db"
	"guildpulse/models"
	"guildpulse/testutils"
)

func setupTestService(t *testing.T) (*ExclusionsService, string, func()) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to create database connection")

	exclusionsRepo := db.NewPostgresExclusionsRepository(dbConn, cfg.DatabaseSchema)
	exclusionsService := NewExclusionsService(exclusionsRepo)

	guildID := testutils.TestGuildID()
	cleanup := func() {
		_, _ = exclusionsRepo.DeleteExclusionsByGuildID(context.Background(), guildID)
		dbConn.Close()
	}

	return exclusionsService, guildID, cleanup
}

func TestExclude(t *testing.T) {
	ctx := context.Background()

	t.Run("ExcludedUserIsReported", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.Exclude(ctx, models.SubjectTypeUser, userID, guildID))

		excluded, err := service.IsExcluded(ctx, models.SubjectTypeUser, userID, guildID)
		require.NoError(t, err)
		assert.True(t, excluded)
	})

	t.Run("ExcludeIsIdempotent", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()
		channelID := testutils.TestChannelID()

		require.NoError(t, service.Exclude(ctx, models.SubjectTypeChannel, channelID, guildID))
		require.NoError(t, service.Exclude(ctx, models.SubjectTypeChannel, channelID, guildID))

		exclusions, err := service.ListExclusions(ctx, models.SubjectTypeChannel, guildID)
		require.NoError(t, err)
		assert.Len(t, exclusions, 1)
	})

	t.Run("SubjectTypesDoNotOverlap", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()
		subjectID := testutils.TestUserID()

		require.NoError(t, service.Exclude(ctx, models.SubjectTypeUser, subjectID, guildID))

		excluded, err := service.IsExcluded(ctx, models.SubjectTypeChannel, subjectID, guildID)
		require.NoError(t, err)
		assert.False(t, excluded)
	})
}

func TestInclude(t *testing.T) {
	ctx := context.Background()

	t.Run("IncludeRemovesExclusion", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.Exclude(ctx, models.SubjectTypeUser, userID, guildID))
		require.NoError(t, service.Include(ctx, models.SubjectTypeUser, userID, guildID))

		excluded, err := service.IsExcluded(ctx, models.SubjectTypeUser, userID, guildID)
		require.NoError(t, err)
		assert.False(t, excluded)
	})

	t.Run("IncludeWithoutExclusionReturnsNotFound", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()

		err := service.Include(ctx, models.SubjectTypeUser, testutils.TestUserID(), guildID)
		assert.True(t, core.IsNotFoundError(err))
	})
}

func TestIsExcluded(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownSubjectIsNotExcluded", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()

		excluded, err := service.IsExcluded(ctx, models.SubjectTypeUser, testutils.TestUserID(), guildID)
		require.NoError(t, err)
		assert.False(t, excluded)
	})

	t.Run("ExclusionIsScopedToGuild", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.Exclude(ctx, models.SubjectTypeUser, userID, guildID))

		excluded, err := service.IsExcluded(ctx, models.SubjectTypeUser, userID, testutils.TestGuildID())
		require.NoError(t, err)
		assert.False(t, excluded)
	})
}
