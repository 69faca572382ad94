package models

type DiscordMessageEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Content   string
	// Mentions contains the user IDs of all users mentioned in this message
	Mentions []string
}

type DiscordReactionEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	EmojiName string
}

// DiscordVoiceState is a snapshot of the voice flags relevant to session tracking.
type DiscordVoiceState struct {
	ChannelID string
	SelfMute  bool
	SelfVideo bool
	Streaming bool
}

// DiscordVoiceStateEvent carries the before/after voice state of a member.
// Old is zero-valued when the member had no previous voice state.
type DiscordVoiceStateEvent struct {
	GuildID   string
	UserID    string
	ChannelID string
	Old       DiscordVoiceState
	New       DiscordVoiceState
}
