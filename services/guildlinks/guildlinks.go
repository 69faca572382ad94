package guildlinks

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/samber/mo"

	"guildpulse/core"
	"guildpulse/db"
	"guildpulse/models"
)

// GuildLinksService manages the named links configured per guild.
type GuildLinksService struct {
	guildLinksRepo *db.PostgresGuildLinksRepository
}

func NewGuildLinksService(guildLinksRepo *db.PostgresGuildLinksRepository) *GuildLinksService {
	return &GuildLinksService{guildLinksRepo: guildLinksRepo}
}

func (s *GuildLinksService) SetLink(
	ctx context.Context,
	guildID, name, linkURL string,
) (*models.GuildLink, error) {
	log.Printf("📋 Starting to set link %s for guild %s", name, guildID)
	if guildID == "" || name == "" {
		return nil, fmt.Errorf("guild ID and link name cannot be empty")
	}
	if err := validateURL(linkURL); err != nil {
		return nil, err
	}

	link := &models.GuildLink{
		ID:      core.NewID("gl"),
		GuildID: guildID,
		Name:    name,
		URL:     linkURL,
	}
	if err := s.guildLinksRepo.UpsertGuildLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to set link %s for guild %s: %w", name, guildID, err)
	}

	log.Printf("📋 Completed successfully - set link %s for guild %s", name, guildID)
	return link, nil
}

func (s *GuildLinksService) GetLink(
	ctx context.Context,
	guildID, name string,
) (mo.Option[*models.GuildLink], error) {
	maybeLink, err := s.guildLinksRepo.GetGuildLink(ctx, guildID, name)
	if err != nil {
		return mo.None[*models.GuildLink](), fmt.Errorf("failed to get link %s for guild %s: %w", name, guildID, err)
	}
	return maybeLink, nil
}

func (s *GuildLinksService) ListLinks(
	ctx context.Context,
	guildID string,
) ([]*models.GuildLink, error) {
	log.Printf("📋 Starting to list links for guild %s", guildID)

	links, err := s.guildLinksRepo.ListGuildLinks(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links for guild %s: %w", guildID, err)
	}

	log.Printf("📋 Completed successfully - listed %d links for guild %s", len(links), guildID)
	return links, nil
}

func validateURL(linkURL string) error {
	parsed, err := url.Parse(linkURL)
	if err != nil {
		return fmt.Errorf("invalid link URL %q: %w", linkURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("link URL %q must use http or https", linkURL)
	}
	return nil
}
