package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildpulse/db"
	"guildpulse/models"
	"guildpulse/services/txmanager"
	"guildpulse/testutils"
)

func setupTestService(t *testing.T) (*ActivityService, *db.PostgresActivityRecordsRepository, string, func()) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to create database connection")

	activityRepo := db.NewPostgresActivityRecordsRepository(dbConn, cfg.DatabaseSchema)
	txManager := txmanager.NewTransactionManager(dbConn)
	activityService := NewActivityService(activityRepo, txManager, "test")

	guildID := testutils.TestGuildID()
	cleanup := func() {
		_, _ = activityRepo.DeleteActivityRecordsByGuildID(context.Background(), guildID)
		dbConn.Close()
	}

	return activityService, activityRepo, guildID, cleanup
}

func TestUpsertActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstEventCreatesRecord", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		err := service.UpsertActivity(ctx, userID, guildID, 1, 0, 0, 0, 20)
		require.NoError(t, err)

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		require.True(t, maybeRecord.IsPresent())

		record := maybeRecord.MustGet()
		assert.Equal(t, int64(1), record.MessageCount)
		assert.Equal(t, int64(1), record.FrequencyCounts.VeryHigh)
		assert.Equal(t, int64(1), record.MessageLengthCounts.VeryShort)
		// 1 message * 3 + 1 veryHigh * 1 + 1 veryShort * 0.05 = 4.05, rounds to 4
		assert.Equal(t, int64(4), record.ActivityScore)
		assert.Equal(t, "test", record.Version)
		assert.Greater(t, record.UpdatedAt, int64(0))
	})

	t.Run("SequentialEventsAccumulateOnOneRecord", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.UpsertActivity(ctx, userID, guildID, 1, 0, 0, 0, 200))
		require.NoError(t, service.UpsertActivity(ctx, userID, guildID, 0, 1, 0, 0, 10))
		require.NoError(t, service.UpsertActivity(ctx, userID, guildID, 0, 0, 1, 0, 0))

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		require.True(t, maybeRecord.IsPresent())

		record := maybeRecord.MustGet()
		assert.Equal(t, int64(1), record.MessageCount)
		assert.Equal(t, int64(1), record.ReplyCount)
		assert.Equal(t, int64(1), record.ReactionCount)
		assert.Equal(t, int64(3), record.FrequencyCounts.VeryHigh)
		assert.Equal(t, int64(1), record.MessageLengthCounts.Middle)
		assert.Equal(t, int64(1), record.MessageLengthCounts.VeryShort)
		// reaction with no content must not bump a length bucket
		assert.Equal(t, int64(0), record.MessageLengthCounts.Short)
	})

	t.Run("ConcurrentUpsertsLoseNoIncrements", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		const workers = 8
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			go func() {
				errs <- service.UpsertActivity(ctx, userID, guildID, 1, 0, 0, 0, 10)
			}()
		}
		for i := 0; i < workers; i++ {
			require.NoError(t, <-errs)
		}

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		require.True(t, maybeRecord.IsPresent())
		assert.Equal(t, int64(workers), maybeRecord.MustGet().MessageCount)
	})

	t.Run("EmptyIDsAreRejected", func(t *testing.T) {
		service, _, guildID, cleanup := setupTestService(t)
		defer cleanup()

		assert.Error(t, service.UpsertActivity(ctx, "", guildID, 1, 0, 0, 0, 0))
		assert.Error(t, service.UpsertActivity(ctx, testutils.TestUserID(), "", 1, 0, 0, 0, 0))
	})
}

func TestRecordMentions(t *testing.T) {
	ctx := context.Background()

	t.Run("EachMentionedUserGetsCredit", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		mentioned := []string{testutils.TestUserID(), testutils.TestUserID()}

		require.NoError(t, service.RecordMentions(ctx, mentioned, guildID))

		for _, userID := range mentioned {
			maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
			require.NoError(t, err)
			require.True(t, maybeRecord.IsPresent())

			record := maybeRecord.MustGet()
			assert.Equal(t, int64(1), record.MentionedCount)
			assert.Equal(t, int64(0), record.MessageCount)
		}
	})
}

func TestSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("StartSessionCreatesRecordWithoutScore", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.StartSession(ctx, userID, guildID, models.SessionVideo))

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		require.True(t, maybeRecord.IsPresent())

		record := maybeRecord.MustGet()
		assert.Greater(t, record.EnabledVideoAt, int64(0))
		assert.Equal(t, int64(0), record.ActivityScore)
	})

	t.Run("EndSessionAccumulatesElapsedMinutes", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		// Seed a session that started ten minutes ago
		require.NoError(t, service.StartSession(ctx, userID, guildID, models.SessionScreencast))
		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		record := maybeRecord.MustGet()
		record.EnabledScreencastAt = time.Now().Add(-10 * time.Minute).UnixMilli()
		require.NoError(t, repo.UpdateActivityRecord(ctx, record))

		require.NoError(t, service.EndSession(ctx, userID, guildID, models.SessionScreencast))

		maybeRecord, err = repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		record = maybeRecord.MustGet()
		assert.Equal(t, int64(10), record.TotalTimeWithScreencast)
		// 10 screencast minutes * 3
		assert.Equal(t, int64(30), record.ActivityScore)
	})

	t.Run("RepeatedSessionsAccumulate", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		for i := 0; i < 2; i++ {
			require.NoError(t, service.StartSession(ctx, userID, guildID, models.SessionScreencast))
			maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
			require.NoError(t, err)
			record := maybeRecord.MustGet()
			record.EnabledScreencastAt = time.Now().Add(-5 * time.Minute).UnixMilli()
			require.NoError(t, repo.UpdateActivityRecord(ctx, record))
			require.NoError(t, service.EndSession(ctx, userID, guildID, models.SessionScreencast))
		}

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), maybeRecord.MustGet().TotalTimeWithScreencast)
	})

	t.Run("EndSessionWithoutRecordIsNoOp", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.EndSession(ctx, userID, guildID, models.SessionMicrophone))

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		assert.False(t, maybeRecord.IsPresent())
	})

	t.Run("EndSessionWithoutOpenSessionIsNoOp", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.UpsertActivity(ctx, userID, guildID, 1, 0, 0, 0, 10))
		require.NoError(t, service.EndSession(ctx, userID, guildID, models.SessionVideo))

		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), maybeRecord.MustGet().TotalTimeWithVideo)
	})
}

func TestMostActiveUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("RanksByScoreAndTruncates", func(t *testing.T) {
		service, _, guildID, cleanup := setupTestService(t)
		defer cleanup()

		low := testutils.TestUserID()
		mid := testutils.TestUserID()
		high := testutils.TestUserID()
		require.NoError(t, service.UpsertActivity(ctx, low, guildID, 1, 0, 0, 0, 10))
		require.NoError(t, service.UpsertActivity(ctx, mid, guildID, 3, 0, 0, 0, 10))
		require.NoError(t, service.UpsertActivity(ctx, high, guildID, 5, 0, 0, 0, 10))

		records, err := service.MostActiveUsers(ctx, 2, guildID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, high, records[0].UserID)
		assert.Equal(t, mid, records[1].UserID)
	})

	t.Run("EmptyGuildYieldsNoRecords", func(t *testing.T) {
		service, _, guildID, cleanup := setupTestService(t)
		defer cleanup()

		records, err := service.MostActiveUsers(ctx, 5, guildID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRecalculateScores(t *testing.T) {
	ctx := context.Background()

	t.Run("RestoresDerivedScores", func(t *testing.T) {
		service, repo, guildID, cleanup := setupTestService(t)
		defer cleanup()
		userID := testutils.TestUserID()

		require.NoError(t, service.UpsertActivity(ctx, userID, guildID, 1, 0, 0, 0, 20))

		// Corrupt the stored score, then recompute
		maybeRecord, err := repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		record := maybeRecord.MustGet()
		record.ActivityScore = 9999
		require.NoError(t, repo.UpdateActivityRecord(ctx, record))

		updated, err := service.RecalculateScores(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, updated, 1)

		maybeRecord, err = repo.GetActivityRecord(ctx, userID, guildID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), maybeRecord.MustGet().ActivityScore)
	})
}
