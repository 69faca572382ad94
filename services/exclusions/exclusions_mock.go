package exclusions

import (
	"context"

	"github.com/stretchr/testify/mock"

	"guildpulse/models"
)

type MockExclusionsService struct {
	mock.Mock
}

func (m *MockExclusionsService) Exclude(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) error {
	args := m.Called(ctx, subjectType, subjectID, guildID)
	return args.Error(0)
}

func (m *MockExclusionsService) Include(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) error {
	args := m.Called(ctx, subjectType, subjectID, guildID)
	return args.Error(0)
}

func (m *MockExclusionsService) IsExcluded(
	ctx context.Context,
	subjectType models.SubjectType,
	subjectID, guildID string,
) (bool, error) {
	args := m.Called(ctx, subjectType, subjectID, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExclusionsService) ListExclusions(
	ctx context.Context,
	subjectType models.SubjectType,
	guildID string,
) ([]*models.Exclusion, error) {
	args := m.Called(ctx, subjectType, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Exclusion), args.Error(1)
}
