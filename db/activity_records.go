package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	"guildpulse/db/tx"
	"guildpulse/models"
)

type PostgresActivityRecordsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for activity_records table
var activityRecordsColumns = []string{
	"id",
	"user_id",
	"guild_id",
	"message_count",
	"reply_count",
	"reaction_count",
	"mentioned_count",
	"freq_very_high",
	"freq_high",
	"freq_middle",
	"freq_low",
	"len_very_short",
	"len_short",
	"len_middle",
	"len_long",
	"joined_voice_channel_at",
	"enabled_microphone_at",
	"enabled_video_at",
	"enabled_screencast_at",
	"total_time_in_voice_channel",
	"total_time_with_microphone",
	"total_time_with_video",
	"total_time_with_screencast",
	"activity_score",
	"updated_at",
	"version",
}

func NewPostgresActivityRecordsRepository(db *sqlx.DB, schema string) *PostgresActivityRecordsRepository {
	return &PostgresActivityRecordsRepository{db: db, schema: schema}
}

func (r *PostgresActivityRecordsRepository) CreateActivityRecord(
	ctx context.Context,
	record *models.ActivityRecord,
) error {
	columnsStr := strings.Join(activityRecordsColumns, ", ")
	placeholders := make([]string, len(activityRecordsColumns))
	for i := range activityRecordsColumns {
		placeholders[i] = fmt.Sprintf(":%s", activityRecordsColumns[i])
	}

	query := fmt.Sprintf(`
		INSERT INTO %s.activity_records (%s)
		VALUES (%s)`, r.schema, columnsStr, strings.Join(placeholders, ", "))

	querier := tx.GetTransactional(ctx, r.db)
	boundQuery, args, err := sqlx.Named(query, record)
	if err != nil {
		return fmt.Errorf("failed to bind activity record insert: %w", err)
	}

	if _, err := querier.ExecContext(ctx, r.db.Rebind(boundQuery), args...); err != nil {
		return fmt.Errorf("failed to create activity record: %w", err)
	}

	return nil
}

func (r *PostgresActivityRecordsRepository) UpdateActivityRecord(
	ctx context.Context,
	record *models.ActivityRecord,
) error {
	assignments := make([]string, 0, len(activityRecordsColumns)-1)
	for _, column := range activityRecordsColumns {
		if column == "id" {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = :%s", column, column))
	}

	query := fmt.Sprintf(`
		UPDATE %s.activity_records
		SET %s
		WHERE id = :id`, r.schema, strings.Join(assignments, ", "))

	querier := tx.GetTransactional(ctx, r.db)
	boundQuery, args, err := sqlx.Named(query, record)
	if err != nil {
		return fmt.Errorf("failed to bind activity record update: %w", err)
	}

	result, err := querier.ExecContext(ctx, r.db.Rebind(boundQuery), args...)
	if err != nil {
		return fmt.Errorf("failed to update activity record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("activity record %s does not exist", record.ID)
	}

	return nil
}

func (r *PostgresActivityRecordsRepository) GetActivityRecord(
	ctx context.Context,
	userID, guildID string,
) (mo.Option[*models.ActivityRecord], error) {
	return r.getActivityRecord(ctx, userID, guildID, false)
}

// GetActivityRecordForUpdate locks the matching row for the remainder of the
// surrounding transaction, serializing concurrent read-modify-write upserts
// for the same (user, guild) key.
func (r *PostgresActivityRecordsRepository) GetActivityRecordForUpdate(
	ctx context.Context,
	userID, guildID string,
) (mo.Option[*models.ActivityRecord], error) {
	return r.getActivityRecord(ctx, userID, guildID, true)
}

func (r *PostgresActivityRecordsRepository) getActivityRecord(
	ctx context.Context,
	userID, guildID string,
	forUpdate bool,
) (mo.Option[*models.ActivityRecord], error) {
	if userID == "" || guildID == "" {
		return mo.None[*models.ActivityRecord](), fmt.Errorf("user ID and guild ID cannot be empty")
	}

	columnsStr := strings.Join(activityRecordsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.activity_records
		WHERE user_id = $1 AND guild_id = $2`, columnsStr, r.schema)
	if forUpdate {
		query += " FOR UPDATE"
	}

	querier := tx.GetTransactional(ctx, r.db)
	var record models.ActivityRecord
	err := querier.GetContext(ctx, &record, query, userID, guildID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.ActivityRecord](), nil
		}
		return mo.None[*models.ActivityRecord](), fmt.Errorf("failed to get activity record: %w", err)
	}

	return mo.Some(&record), nil
}

// ListMostActiveUsers returns up to n records for the guild, ordered by
// activity score descending. Ties are broken by the backend's ordering.
func (r *PostgresActivityRecordsRepository) ListMostActiveUsers(
	ctx context.Context,
	guildID string,
	n int,
) ([]*models.ActivityRecord, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}
	if n <= 0 {
		return []*models.ActivityRecord{}, nil
	}

	columnsStr := strings.Join(activityRecordsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.activity_records
		WHERE guild_id = $1
		ORDER BY activity_score DESC
		LIMIT $2`, columnsStr, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	var records []*models.ActivityRecord
	if err := querier.SelectContext(ctx, &records, query, guildID, n); err != nil {
		return nil, fmt.Errorf("failed to list most active users: %w", err)
	}

	return records, nil
}

func (r *PostgresActivityRecordsRepository) DeleteActivityRecordsByGuildID(
	ctx context.Context,
	guildID string,
) (int64, error) {
	if guildID == "" {
		return 0, fmt.Errorf("guild ID cannot be empty")
	}

	query := fmt.Sprintf(`DELETE FROM %s.activity_records WHERE guild_id = $1`, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	result, err := querier.ExecContext(ctx, query, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete activity records: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *PostgresActivityRecordsRepository) ListAllActivityRecords(
	ctx context.Context,
) ([]*models.ActivityRecord, error) {
	columnsStr := strings.Join(activityRecordsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.activity_records
		ORDER BY guild_id, user_id`, columnsStr, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	var records []*models.ActivityRecord
	if err := querier.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list all activity records: %w", err)
	}

	return records, nil
}
