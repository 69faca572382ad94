package guildlinks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildpulse/db"
	"guildpulse/testutils"
)

func setupTestService(t *testing.T) (*GuildLinksService, string, func()) {
	cfg, err := testutils.LoadTestConfig()
	require.NoError(t, err)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to create database connection")

	guildLinksRepo := db.NewPostgresGuildLinksRepository(dbConn, cfg.DatabaseSchema)
	guildLinksService := NewGuildLinksService(guildLinksRepo)

	guildID := testutils.TestGuildID()
	cleanup := func() {
		_, _ = guildLinksRepo.DeleteGuildLinksByGuildID(context.Background(), guildID)
		dbConn.Close()
	}

	return guildLinksService, guildID, cleanup
}

func TestSetLink(t *testing.T) {
	ctx := context.Background()

	t.Run("SetAndGetLink", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()

		link, err := service.SetLink(ctx, guildID, "store", "https://example.com/store")
		require.NoError(t, err)
		assert.Equal(t, "store", link.Name)

		maybeLink, err := service.GetLink(ctx, guildID, "store")
		require.NoError(t, err)
		require.True(t, maybeLink.IsPresent())
		assert.Equal(t, "https://example.com/store", maybeLink.MustGet().URL)
	})

	t.Run("SetLinkOverwritesSameName", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.SetLink(ctx, guildID, "wiki", "https://example.com/old")
		require.NoError(t, err)
		_, err = service.SetLink(ctx, guildID, "wiki", "https://example.com/new")
		require.NoError(t, err)

		links, err := service.ListLinks(ctx, guildID)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/new", links[0].URL)
	})

	t.Run("RejectsNonHTTPURLs", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()

		_, err := service.SetLink(ctx, guildID, "bad", "ftp://example.com")
		assert.Error(t, err)
	})
}

func TestGetLink(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingLinkIsAbsent", func(t *testing.T) {
		service, guildID, cleanup := setupTestService(t)
		defer cleanup()

		maybeLink, err := service.GetLink(ctx, guildID, "nope")
		require.NoError(t, err)
		assert.False(t, maybeLink.IsPresent())
	})
}
