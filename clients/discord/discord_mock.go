package discord

import (
	"github.com/stretchr/testify/mock"

	"guildpulse/clients"
)

type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordUser), args.Error(1)
}

func (m *MockDiscordClient) MemberRoleNames(guildID, userID string) ([]string, error) {
	args := m.Called(guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDiscordClient) GuildRoleNames(guildID string) ([]string, error) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
