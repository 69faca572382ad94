package activity

import (
	"context"
	"fmt"
	"log"
	"time"

	"guildpulse/core"
	"guildpulse/db"
	"guildpulse/models"
	"guildpulse/scoring"
	"guildpulse/services"
)

// ActivityService maintains the per-(user, guild) engagement aggregates.
// Every upsert runs as a locked read-modify-write inside a transaction, so
// concurrently firing events for the same key cannot lose increments or
// produce duplicate records.
type ActivityService struct {
	activityRepo *db.PostgresActivityRecordsRepository
	txManager    services.TransactionManager
	version      string
}

func NewActivityService(
	activityRepo *db.PostgresActivityRecordsRepository,
	txManager services.TransactionManager,
	version string,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		txManager:    txManager,
		version:      version,
	}
}

// UpsertActivity folds one event's increments into the record for
// (userID, guildID), creating the record if none exists. The frequency
// histogram is bumped using the record's previous update timestamp; the
// length histogram only when messageLength > 0. The activity score is
// recomputed on every write.
func (s *ActivityService) UpsertActivity(
	ctx context.Context,
	userID, guildID string,
	messageIncrement, replyIncrement, reactionIncrement, mentionedIncrement int64,
	messageLength int,
) error {
	log.Printf("📋 Starting to upsert activity for user %s in guild %s", userID, guildID)
	if userID == "" || guildID == "" {
		return fmt.Errorf("user ID and guild ID cannot be empty")
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		maybeRecord, err := s.activityRepo.GetActivityRecordForUpdate(ctx, userID, guildID)
		if err != nil {
			return fmt.Errorf("failed to look up activity record: %w", err)
		}

		now := time.Now()

		if !maybeRecord.IsPresent() {
			record := s.newRecord(userID, guildID, now)
			record.MessageCount = messageIncrement
			record.ReplyCount = replyIncrement
			record.ReactionCount = reactionIncrement
			record.MentionedCount = mentionedIncrement
			record.FrequencyCounts.Increment(scoring.FrequencyBucket(now.UnixMilli(), now))
			if messageLength > 0 {
				record.MessageLengthCounts.Increment(scoring.MessageLengthBucket(messageLength))
			}
			record.ActivityScore = scoring.RecordScore(record)

			if err := s.activityRepo.CreateActivityRecord(ctx, record); err != nil {
				return err
			}
			log.Printf("📋 Inserted new activity record for user %s in guild %s", userID, guildID)
			return nil
		}

		record := maybeRecord.MustGet()
		if messageLength > 0 {
			record.MessageLengthCounts.Increment(scoring.MessageLengthBucket(messageLength))
		}
		record.FrequencyCounts.Increment(scoring.FrequencyBucket(record.UpdatedAt, now))
		record.MessageCount += messageIncrement
		record.ReplyCount += replyIncrement
		record.ReactionCount += reactionIncrement
		record.MentionedCount += mentionedIncrement
		record.UpdatedAt = now.UnixMilli()
		record.Version = s.version
		record.ActivityScore = scoring.RecordScore(record)

		if err := s.activityRepo.UpdateActivityRecord(ctx, record); err != nil {
			return err
		}
		log.Printf("📋 Updated existing activity record for user %s in guild %s", userID, guildID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert activity for user %s in guild %s: %w", userID, guildID, err)
	}

	log.Printf("📋 Completed successfully - upserted activity for user %s in guild %s", userID, guildID)
	return nil
}

// RecordMentions applies one mentioned-increment per mentioned user.
func (s *ActivityService) RecordMentions(ctx context.Context, userIDs []string, guildID string) error {
	log.Printf("📋 Starting to record %d mentions in guild %s", len(userIDs), guildID)
	for _, userID := range userIDs {
		if err := s.UpsertActivity(ctx, userID, guildID, 0, 0, 0, 1, 0); err != nil {
			return fmt.Errorf("failed to record mention for user %s: %w", userID, err)
		}
	}
	log.Printf("📋 Completed successfully - recorded %d mentions in guild %s", len(userIDs), guildID)
	return nil
}

// StartSession stamps the session-start timestamp for the kind, creating the
// record if necessary. The score is not recomputed here: a freshly started
// session has no measurable duration yet.
func (s *ActivityService) StartSession(
	ctx context.Context,
	userID, guildID string,
	kind models.SessionKind,
) error {
	log.Printf("📋 Starting %s session for user %s in guild %s", kind, userID, guildID)
	if userID == "" || guildID == "" {
		return fmt.Errorf("user ID and guild ID cannot be empty")
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		maybeRecord, err := s.activityRepo.GetActivityRecordForUpdate(ctx, userID, guildID)
		if err != nil {
			return fmt.Errorf("failed to look up activity record: %w", err)
		}

		now := time.Now()

		if !maybeRecord.IsPresent() {
			record := s.newRecord(userID, guildID, now)
			record.AudioVideoActivities.SetStartedAt(kind, now.UnixMilli())
			return s.activityRepo.CreateActivityRecord(ctx, record)
		}

		record := maybeRecord.MustGet()
		record.AudioVideoActivities.SetStartedAt(kind, now.UnixMilli())
		record.UpdatedAt = now.UnixMilli()
		return s.activityRepo.UpdateActivityRecord(ctx, record)
	})
	if err != nil {
		return fmt.Errorf("failed to start %s session for user %s in guild %s: %w", kind, userID, guildID, err)
	}

	log.Printf("📋 Completed successfully - started %s session for user %s in guild %s", kind, userID, guildID)
	return nil
}

// EndSession accumulates the elapsed session minutes onto the cumulative
// total for the kind and recomputes the score. A missing record, or a kind
// with no open session, makes this a no-op rather than an error.
func (s *ActivityService) EndSession(
	ctx context.Context,
	userID, guildID string,
	kind models.SessionKind,
) error {
	log.Printf("📋 Ending %s session for user %s in guild %s", kind, userID, guildID)
	if userID == "" || guildID == "" {
		return fmt.Errorf("user ID and guild ID cannot be empty")
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		maybeRecord, err := s.activityRepo.GetActivityRecordForUpdate(ctx, userID, guildID)
		if err != nil {
			return fmt.Errorf("failed to look up activity record: %w", err)
		}
		if !maybeRecord.IsPresent() {
			log.Printf("📋 No activity record for user %s in guild %s - ignoring session end", userID, guildID)
			return nil
		}

		record := maybeRecord.MustGet()
		startedAt := record.AudioVideoActivities.StartedAt(kind)
		if startedAt == 0 {
			log.Printf("📋 No open %s session for user %s in guild %s - ignoring session end", kind, userID, guildID)
			return nil
		}

		now := time.Now()
		record.AudioVideoActivities.AddMinutes(kind, scoring.ElapsedMinutes(startedAt, now))
		record.UpdatedAt = now.UnixMilli()
		record.Version = s.version
		record.ActivityScore = scoring.RecordScore(record)

		return s.activityRepo.UpdateActivityRecord(ctx, record)
	})
	if err != nil {
		return fmt.Errorf("failed to end %s session for user %s in guild %s: %w", kind, userID, guildID, err)
	}

	log.Printf("📋 Completed successfully - ended %s session for user %s in guild %s", kind, userID, guildID)
	return nil
}

// MostActiveUsers returns the top n records of the guild by activity score.
func (s *ActivityService) MostActiveUsers(
	ctx context.Context,
	n int,
	guildID string,
) ([]*models.ActivityRecord, error) {
	log.Printf("📋 Starting to get %d most active users in guild %s", n, guildID)

	records, err := s.activityRepo.ListMostActiveUsers(ctx, guildID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get most active users: %w", err)
	}

	log.Printf("📋 Completed successfully - got %d most active users in guild %s", len(records), guildID)
	return records, nil
}

// RecalculateScores recomputes the activity score of every record with the
// current formula and stamps the current version. Used by the back-compat
// recompute job after formula changes.
func (s *ActivityService) RecalculateScores(ctx context.Context) (int, error) {
	log.Printf("📋 Starting to recalculate activity scores")

	records, err := s.activityRepo.ListAllActivityRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list activity records: %w", err)
	}

	updated := 0
	for _, record := range records {
		record.ActivityScore = scoring.RecordScore(record)
		record.Version = s.version

		if err := s.activityRepo.UpdateActivityRecord(ctx, record); err != nil {
			return updated, fmt.Errorf("failed to update record %s: %w", record.ID, err)
		}
		updated++
	}

	log.Printf("📋 Completed successfully - recalculated %d of %d activity scores", updated, len(records))
	return updated, nil
}

func (s *ActivityService) newRecord(userID, guildID string, now time.Time) *models.ActivityRecord {
	return &models.ActivityRecord{
		ID:        core.NewID("act"),
		UserID:    userID,
		GuildID:   guildID,
		UpdatedAt: now.UnixMilli(),
		Version:   s.version,
	}
}
