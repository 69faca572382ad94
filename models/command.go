package models

// Slash command names exposed by the bot.
const (
	CommandExcludeUser         = "exclude-user"
	CommandIncludeUser         = "include-user"
	CommandViewExcludedUsers   = "view-excluded-users"
	CommandExcludeChannel      = "exclude-channel"
	CommandIncludeChannel      = "include-channel"
	CommandViewExcludedChannels = "view-excluded-channels"
	CommandToggleTrackerStatus = "toggle-tracker-status"
	CommandViewTrackerStatus   = "view-tracker-status"
	CommandTopUsers            = "top-users"
	CommandSetGuildLink        = "set-guild-link"
	CommandViewGuildLink       = "view-guild-link"
	CommandViewGuildLinks      = "view-guild-links"
)

// AdminCommands are gated on the configured admin role.
var AdminCommands = []string{
	CommandExcludeUser,
	CommandIncludeUser,
	CommandViewExcludedUsers,
	CommandExcludeChannel,
	CommandIncludeChannel,
	CommandViewExcludedChannels,
	CommandToggleTrackerStatus,
	CommandViewTrackerStatus,
	CommandSetGuildLink,
}

// CommandInvocation is a structured slash-command call as delivered by the gateway.
type CommandInvocation struct {
	Name    string
	GuildID string
	UserID  string
	// Options holds the typed option values, stringified by the gateway handler
	Options map[string]string
}
