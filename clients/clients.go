package clients

// DiscordUser represents a Discord user as seen by the client
type DiscordUser struct {
	ID       string
	Username string
}

// DiscordClient is the surface of the Discord API the usecases depend on.
// Gateway event delivery is wired separately against the raw session.
type DiscordClient interface {
	// GetBotUser returns the bot's own user
	GetBotUser() (*DiscordUser, error)
	// MemberRoleNames returns the role names held by a guild member
	MemberRoleNames(guildID, userID string) ([]string, error)
	// GuildRoleNames returns the names of all roles defined in a guild
	GuildRoleNames(guildID string) ([]string, error)
}
