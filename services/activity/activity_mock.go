package activity

import (
	"context"

	"github.com/stretchr/testify/mock"

	"guildpulse/models"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) UpsertActivity(
	ctx context.Context,
	userID, guildID string,
	messageIncrement, replyIncrement, reactionIncrement, mentionedIncrement int64,
	messageLength int,
) error {
	args := m.Called(
		ctx,
		userID,
		guildID,
		messageIncrement,
		replyIncrement,
		reactionIncrement,
		mentionedIncrement,
		messageLength,
	)
	return args.Error(0)
}

func (m *MockActivityService) RecordMentions(ctx context.Context, userIDs []string, guildID string) error {
	args := m.Called(ctx, userIDs, guildID)
	return args.Error(0)
}

func (m *MockActivityService) StartSession(
	ctx context.Context,
	userID, guildID string,
	kind models.SessionKind,
) error {
	args := m.Called(ctx, userID, guildID, kind)
	return args.Error(0)
}

func (m *MockActivityService) EndSession(
	ctx context.Context,
	userID, guildID string,
	kind models.SessionKind,
) error {
	args := m.Called(ctx, userID, guildID, kind)
	return args.Error(0)
}

func (m *MockActivityService) MostActiveUsers(
	ctx context.Context,
	n int,
	guildID string,
) ([]*models.ActivityRecord, error) {
	args := m.Called(ctx, n, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ActivityRecord), args.Error(1)
}

func (m *MockActivityService) RecalculateScores(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
