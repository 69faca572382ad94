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

type PostgresGuildLinksRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guild_links table
var guildLinksColumns = []string{
	"id",
	"guild_id",
	"name",
	"url",
	"created_at",
	"updated_at",
}

func NewPostgresGuildLinksRepository(db *sqlx.DB, schema string) *PostgresGuildLinksRepository {
	return &PostgresGuildLinksRepository{db: db, schema: schema}
}

func (r *PostgresGuildLinksRepository) UpsertGuildLink(
	ctx context.Context,
	link *models.GuildLink,
) error {
	returningStr := strings.Join(guildLinksColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.guild_links (id, guild_id, name, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (guild_id, name)
		DO UPDATE SET url = EXCLUDED.url, updated_at = NOW()
		RETURNING %s`, r.schema, returningStr)

	querier := tx.GetTransactional(ctx, r.db)
	err := querier.QueryRowxContext(ctx, query, link.ID, link.GuildID, link.Name, link.URL).
		StructScan(link)
	if err != nil {
		return fmt.Errorf("failed to upsert guild link: %w", err)
	}

	return nil
}

func (r *PostgresGuildLinksRepository) GetGuildLink(
	ctx context.Context,
	guildID, name string,
) (mo.Option[*models.GuildLink], error) {
	if guildID == "" || name == "" {
		return mo.None[*models.GuildLink](), fmt.Errorf("guild ID and name cannot be empty")
	}

	columnsStr := strings.Join(guildLinksColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_links
		WHERE guild_id = $1 AND name = $2`, columnsStr, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	var link models.GuildLink
	err := querier.GetContext(ctx, &link, query, guildID, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.GuildLink](), nil
		}
		return mo.None[*models.GuildLink](), fmt.Errorf("failed to get guild link: %w", err)
	}

	return mo.Some(&link), nil
}

func (r *PostgresGuildLinksRepository) DeleteGuildLinksByGuildID(
	ctx context.Context,
	guildID string,
) (int64, error) {
	if guildID == "" {
		return 0, fmt.Errorf("guild ID cannot be empty")
	}

	query := fmt.Sprintf(`DELETE FROM %s.guild_links WHERE guild_id = $1`, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	result, err := querier.ExecContext(ctx, query, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete guild links: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *PostgresGuildLinksRepository) ListGuildLinks(
	ctx context.Context,
	guildID string,
) ([]*models.GuildLink, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID cannot be empty")
	}

	columnsStr := strings.Join(guildLinksColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_links
		WHERE guild_id = $1
		ORDER BY name ASC`, columnsStr, r.schema)

	querier := tx.GetTransactional(ctx, r.db)
	var links []*models.GuildLink
	if err := querier.SelectContext(ctx, &links, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to list guild links: %w", err)
	}

	return links, nil
}
