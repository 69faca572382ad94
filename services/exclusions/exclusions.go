package exclusions

import (
	"context"
	"fmt"
	"log"
	"time"

	"guildpulse/core"
	"guildpulse/db"
	"guildpulse/models"
)

// ExclusionsService maintains the exclusion side table consulted before any
// trackable event is scored.
type ExclusionsService struct {
	exclusionsRepo *db.PostgresExclusionsRepository
}

func NewExclusionsService(exclusionsRepo *db.PostgresExclusionsRepository) *ExclusionsService {
	return &ExclusionsService{exclusionsRepo: exclusionsRepo}
}

// Exclude marks the subject as excluded. Excluding an already-excluded
// subject is a no-op, never a duplicate row.
func (s *ExclusionsService) Exclude(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) error {
	log.Printf("📋 Starting to exclude %s %s in guild %s", subjectType, subjectID, guildID)
	if subjectID == "" || guildID == "" {
		return fmt.Errorf("subject ID and guild ID cannot be empty")
	}

	maybeExclusion, err := s.exclusionsRepo.GetExclusion(ctx, subjectType, subjectID, guildID)
	if err != nil {
		return fmt.Errorf("failed to look up exclusion: %w", err)
	}
	if maybeExclusion.IsPresent() {
		log.Printf("📋 %s %s in guild %s is already excluded", subjectType, subjectID, guildID)
		return nil
	}

	exclusion := &models.Exclusion{
		ID:          core.NewID("exc"),
		SubjectType: subjectType,
		SubjectID:   subjectID,
		GuildID:     guildID,
		Date:        time.Now().UTC(),
	}
	if err := s.exclusionsRepo.CreateExclusion(ctx, exclusion); err != nil {
		return fmt.Errorf("failed to create exclusion: %w", err)
	}

	log.Printf("📋 Completed successfully - excluded %s %s in guild %s", subjectType, subjectID, guildID)
	return nil
}

// Include removes an existing exclusion. Including a subject that is not
// excluded is an error, not a silent success.
func (s *ExclusionsService) Include(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) error {
	log.Printf("📋 Starting to include %s %s in guild %s", subjectType, subjectID, guildID)
	if subjectID == "" || guildID == "" {
		return fmt.Errorf("subject ID and guild ID cannot be empty")
	}

	maybeExclusion, err := s.exclusionsRepo.GetExclusion(ctx, subjectType, subjectID, guildID)
	if err != nil {
		return fmt.Errorf("failed to look up exclusion: %w", err)
	}
	if !maybeExclusion.IsPresent() {
		return fmt.Errorf("no exclusion exists for %s %s in guild %s: %w",
			subjectType, subjectID, guildID, core.ErrNotFound)
	}

	exclusion := maybeExclusion.MustGet()
	deleted, err := s.exclusionsRepo.DeleteExclusionByID(ctx, exclusion.ID)
	if err != nil {
		return fmt.Errorf("failed to delete exclusion: %w", err)
	}
	if !deleted {
		return fmt.Errorf("exclusion %s vanished before deletion: %w", exclusion.ID, core.ErrNotFound)
	}

	log.Printf("📋 Completed successfully - included %s %s in guild %s", subjectType, subjectID, guildID)
	return nil
}

// IsExcluded reports whether an exclusion exists for the subject. Absence
// is a regular false result, distinct from a lookup failure.
func (s *ExclusionsService) IsExcluded(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) (bool, error) {
	maybeExclusion, err := s.exclusionsRepo.GetExclusion(ctx, subjectType, subjectID, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to look up exclusion: %w", err)
	}
	return maybeExclusion.IsPresent(), nil
}

func (s *ExclusionsService) ListExclusions(
	ctx context.Context,
	subjectType models.SubjectType,
	guildID string,
) ([]*models.Exclusion, error) {
	log.Printf("📋 Starting to list %s exclusions in guild %s", subjectType, guildID)

	exclusions, err := s.exclusionsRepo.ListExclusions(ctx, subjectType, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d %s exclusions in guild %s",
		len(exclusions), subjectType, guildID)
	return exclusions, nil
}
