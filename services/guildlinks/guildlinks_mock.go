package guildlinks

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"guildpulse/models"
)

type MockGuildLinksService struct {
	mock.Mock
}

func (m *MockGuildLinksService) SetLink(
	ctx context.Context,
	guildID, name, url string,
) (*models.GuildLink, error) {
	args := m.Called(ctx, guildID, name, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildLink), args.Error(1)
}

func (m *MockGuildLinksService) GetLink(
	ctx context.Context,
	guildID, name string,
) (mo.Option[*models.GuildLink], error) {
	args := m.Called(ctx, guildID, name)
	return args.Get(0).(mo.Option[*models.GuildLink]), args.Error(1)
}

func (m *MockGuildLinksService) ListLinks(
	ctx context.Context,
	guildID string,
) ([]*models.GuildLink, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GuildLink), args.Error(1)
}
