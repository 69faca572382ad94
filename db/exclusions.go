package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	"guildpulse/db/tx"
	"guildpulse/models"
)

type PostgresExclusionsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for exclusions table
var exclusionsColumns = []string{
	"id",
	"subject_type",
	"subject_id",
	"guild_id",
	"date",
}

func NewPostgresExclusionsRepository(db *sqlx.DB, schema string) *PostgresExclusionsRepository {
	return &PostgresExclusionsRepository{db: db, schema: schema}
}

func (r *PostgresExclusionsRepository) CreateExclusion(
	ctx context.Context,
	exclusion *models.Exclusion,
) error {
	columnsStr := strings.Join(exclusionsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.exclusions (%s)
		VALUES ($1, $2, $3, $4, $5)`, r.schema, columnsStr)

	querier := tx.GetTransactional(ctx, r.db)
	_, err := querier.ExecContext(
		ctx,
		query,
		exclusion.ID,
		exclusion.SubjectType,
		exclusion.SubjectID,
		exclusion.GuildID,
		exclusion.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create exclusion: %w", err)
	}

	return nil
}

// GetExclusion looks up the exclusion for a subject within a guild.
// Finding more than one match is a data-integrity violation and surfaces
// as an error rather than picking one arbitrarily.
func (r *PostgresExclusionsRepository) GetExclusion(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) (mo.Option[*models.Exclusion], error) {
	if subjectID == "" || guildID == "" {
		return mo.None[*models.Exclusion](), fmt.Errorf("subject ID and guild ID cannot be empty")
	}

	columnsStr := strings.Join(exclusionsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.exclusions
		WHERE subject_type = $1 AND subject_id = $2 AND guild_id = $3`, columnsStr, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	var exclusions []*models.Exclusion
	if err := querier.SelectContext(ctx, &exclusions, query, subjectType, subjectID, guildID); err != nil {
		return mo.None[*models.Exclusion](), fmt.Errorf("failed to get exclusion: %w", err)
	}

	switch len(exclusions) {
	case 0:
		return mo.None[*models.Exclusion](), nil
	case 1:
		return mo.Some(exclusions[0]), nil
	default:
		return mo.None[*models.Exclusion](), fmt.Errorf(
			"integrity violation: found %d exclusions for %s %s in guild %s",
			len(exclusions), subjectType, subjectID, guildID)
	}
}

func (r *PostgresExclusionsRepository) DeleteExclusionByID(
	ctx context.Context,
	id string,
) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s.exclusions WHERE id = $1`, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete exclusion: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostgresExclusionsRepository) DeleteExclusionsByGuildID(
	ctx context.Context,
	guildID string,
) (int64, error) {
	if guildID == "" {
		return 0, fmt.Errorf("guild ID cannot be empty")
	}

	query := fmt.Sprintf(`DELETE FROM %s.exclusions WHERE guild_id = $1`, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	result, err := querier.ExecContext(ctx, query, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete exclusions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *PostgresExclusionsRepository) ListExclusions(
	ctx context.Context,
	subjectType models.SubjectType,
	guildID string,
) ([]*models.Exclusion, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	columnsStr := strings.Join(exclusionsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.exclusions
		WHERE subject_type = $1 AND guild_id = $2
		ORDER BY date ASC`, columnsStr, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	var exclusions []*models.Exclusion
	if err := querier.SelectContext(ctx, &exclusions, query, subjectType, guildID); err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}

	return exclusions, nil
}
