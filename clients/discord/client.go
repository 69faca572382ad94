package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"guildpulse/clients"
	"guildpulse/models"
)

// DiscordClient wraps a discordgo session and implements the
// clients.DiscordClient interface.
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a Discord client with the gateway intents the
// tracker needs: guilds, messages, reactions and voice states.
func NewDiscordClient(botToken string) (*DiscordClient, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildVoiceStates
	session.State.TrackVoice = true
	session.State.TrackMembers = true

	return &DiscordClient{session: session}, nil
}

// Session exposes the underlying session for gateway handler registration.
func (c *DiscordClient) Session() *discordgo.Session {
	return c.session
}

// Open connects the gateway session.
func (c *DiscordClient) Open() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	return nil
}

// Close disconnects the gateway session.
func (c *DiscordClient) Close() error {
	if err := c.session.Close(); err != nil {
		return fmt.Errorf("failed to close Discord session: %w", err)
	}
	return nil
}

// GetBotUser returns the bot's own user from session state.
func (c *DiscordClient) GetBotUser() (*clients.DiscordUser, error) {
	if c.session.State.User == nil {
		return nil, fmt.Errorf("bot user not available - session not opened")
	}
	return &clients.DiscordUser{
		ID:       c.session.State.User.ID,
		Username: c.session.State.User.Username,
	}, nil
}

// MemberRoleNames resolves the role names held by a guild member.
func (c *DiscordClient) MemberRoleNames(guildID, userID string) ([]string, error) {
	member, err := c.session.State.Member(guildID, userID)
	if err != nil {
		member, err = c.session.GuildMember(guildID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch guild member: %w", err)
		}
	}

	rolesByID, err := c.guildRolesByID(guildID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(member.Roles))
	for _, roleID := range member.Roles {
		if name, ok := rolesByID[roleID]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// GuildRoleNames returns the names of all roles defined in a guild.
func (c *DiscordClient) GuildRoleNames(guildID string) ([]string, error) {
	rolesByID, err := c.guildRolesByID(guildID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rolesByID))
	for _, name := range rolesByID {
		names = append(names, name)
	}
	return names, nil
}

func (c *DiscordClient) guildRolesByID(guildID string) (map[string]string, error) {
	roles, err := c.session.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild roles: %w", err)
	}

	rolesByID := make(map[string]string, len(roles))
	for _, role := range roles {
		rolesByID[role.ID] = role.Name
	}
	return rolesByID, nil
}

// RegisterCommands overwrites the bot's global slash commands with the
// tracker command set. Must be called after Open, when the application ID
// is known.
func (c *DiscordClient) RegisterCommands() error {
	botUser, err := c.GetBotUser()
	if err != nil {
		return err
	}

	commands := trackerCommands()
	if _, err := c.session.ApplicationCommandBulkOverwrite(botUser.ID, "", commands); err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}
	return nil
}

func trackerCommands() []*discordgo.ApplicationCommand {
	userIDOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "user-id",
		Description: "The id of the user",
		Required:    true,
	}
	channelIDOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "channel-id",
		Description: "The id of the channel",
		Required:    true,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        models.CommandExcludeUser,
			Description: "Excludes a user from being tracked",
			Options:     []*discordgo.ApplicationCommandOption{userIDOption},
		},
		{
			Name:        models.CommandIncludeUser,
			Description: "Includes a user for being tracked",
			Options:     []*discordgo.ApplicationCommandOption{userIDOption},
		},
		{
			Name:        models.CommandViewExcludedUsers,
			Description: "Views users excluded from being tracked",
		},
		{
			Name:        models.CommandExcludeChannel,
			Description: "Excludes a channel from being tracked",
			Options:     []*discordgo.ApplicationCommandOption{channelIDOption},
		},
		{
			Name:        models.CommandIncludeChannel,
			Description: "Includes a channel for being tracked",
			Options:     []*discordgo.ApplicationCommandOption{channelIDOption},
		},
		{
			Name:        models.CommandViewExcludedChannels,
			Description: "Views channels excluded from being tracked",
		},
		{
			Name:        models.CommandToggleTrackerStatus,
			Description: "Toggles tracker status (running/paused)",
		},
		{
			Name:        models.CommandViewTrackerStatus,
			Description: "Views the tracker status (running/paused)",
		},
		{
			Name:        models.CommandTopUsers,
			Description: "Views the most active users of this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "How many users to list",
					Required:    false,
				},
			},
		},
		{
			Name:        models.CommandSetGuildLink,
			Description: "Sets a named link for this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "The name of the link",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "url",
					Description: "The link that should be returned",
					Required:    true,
				},
			},
		},
		{
			Name:        models.CommandViewGuildLink,
			Description: "Views a named link of this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "The name of the link",
					Required:    true,
				},
			},
		},
		{
			Name:        models.CommandViewGuildLinks,
			Description: "Views all named links of this guild",
		},
	}
}
