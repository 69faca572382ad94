package services

import (
	"context"

	"github.com/samber/mo"

	"guildpulse/models"
)

// ActivityService defines the interface for activity tracking operations
type ActivityService interface {
	UpsertActivity(
		ctx context.Context,
		userID, guildID string,
		messageIncrement, replyIncrement, reactionIncrement, mentionedIncrement int64,
		messageLength int,
	) error
	RecordMentions(ctx context.Context, userIDs []string, guildID string) error
	StartSession(ctx context.Context, userID, guildID string, kind models.SessionKind) error
	EndSession(ctx context.Context, userID, guildID string, kind models.SessionKind) error
	MostActiveUsers(ctx context.Context, n int, guildID string) ([]*models.ActivityRecord, error)
	RecalculateScores(ctx context.Context) (int, error)
}

// ExclusionsService defines the interface for exclusion-list operations
type ExclusionsService interface {
	Exclude(ctx context.Context, subjectType models.SubjectType, subjectID, guildID string) error
	Include(ctx context.Context, subjectType models.SubjectType, subjectID, guildID string) error
	IsExcluded(ctx context.Context, subjectType models.SubjectType, subjectID, guildID string) (bool, error)
	ListExclusions(ctx context.Context, subjectType models.SubjectType, guildID string) ([]*models.Exclusion, error)
}

// GuildLinksService defines the interface for per-guild link configuration
type GuildLinksService interface {
	SetLink(ctx context.Context, guildID, name, url string) (*models.GuildLink, error)
	GetLink(ctx context.Context, guildID, name string) (mo.Option[*models.GuildLink], error)
	ListLinks(ctx context.Context, guildID string) ([]*models.GuildLink, error)
}

// TrackerService holds the process-wide tracking toggle
type TrackerService interface {
	IsRunning() bool
	Toggle() bool
}

// TransactionManager defines the interface for transaction management
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
