package models

// FrequencyBucket classifies how long ago a user's previous update happened.
type FrequencyBucket string

const (
	FrequencyVeryHigh FrequencyBucket = "veryHigh"
	FrequencyHigh     FrequencyBucket = "high"
	FrequencyMiddle   FrequencyBucket = "middle"
	FrequencyLow      FrequencyBucket = "low"
)

// MessageLengthBucket classifies a message's character length.
type MessageLengthBucket string

const (
	MessageLengthVeryShort MessageLengthBucket = "veryShort"
	MessageLengthShort     MessageLengthBucket = "short"
	MessageLengthMiddle    MessageLengthBucket = "middle"
	MessageLengthLong      MessageLengthBucket = "long"
)

// SessionKind identifies an audio/video session type.
type SessionKind string

const (
	SessionVoiceChannel SessionKind = "voiceChannel"
	SessionMicrophone   SessionKind = "microphone"
	SessionVideo        SessionKind = "video"
	SessionScreencast   SessionKind = "screencast"
)

// FrequencyCounts tallies how many prior updates fell into each recency bucket.
type FrequencyCounts struct {
	VeryHigh int64 `json:"veryHigh" db:"freq_very_high"`
	High     int64 `json:"high"     db:"freq_high"`
	Middle   int64 `json:"middle"   db:"freq_middle"`
	Low      int64 `json:"low"      db:"freq_low"`
}

func (c *FrequencyCounts) Increment(bucket FrequencyBucket) {
	switch bucket {
	case FrequencyVeryHigh:
		c.VeryHigh++
	case FrequencyHigh:
		c.High++
	case FrequencyMiddle:
		c.Middle++
	case FrequencyLow:
		c.Low++
	}
}

// MessageLengthCounts tallies message lengths per bucket.
type MessageLengthCounts struct {
	VeryShort int64 `json:"veryShort" db:"len_very_short"`
	Short     int64 `json:"short"     db:"len_short"`
	Middle    int64 `json:"middle"    db:"len_middle"`
	Long      int64 `json:"long"      db:"len_long"`
}

func (c *MessageLengthCounts) Increment(bucket MessageLengthBucket) {
	switch bucket {
	case MessageLengthVeryShort:
		c.VeryShort++
	case MessageLengthShort:
		c.Short++
	case MessageLengthMiddle:
		c.Middle++
	case MessageLengthLong:
		c.Long++
	}
}

// AudioVideoActivities aggregates voice-channel sessions for a record.
// Start timestamps are epoch milliseconds (zero = no session started yet),
// totals are cumulative whole minutes.
type AudioVideoActivities struct {
	JoinedVoiceChannelAt    int64 `json:"joinedVoiceChannelAt"    db:"joined_voice_channel_at"`
	EnabledMicrophoneAt     int64 `json:"enabledMicrophoneAt"     db:"enabled_microphone_at"`
	EnabledVideoAt          int64 `json:"enabledVideoAt"          db:"enabled_video_at"`
	EnabledScreencastAt     int64 `json:"enabledScreencastAt"     db:"enabled_screencast_at"`
	TotalTimeInVoiceChannel int64 `json:"totalTimeInVoiceChannel" db:"total_time_in_voice_channel"`
	TotalTimeWithMicrophone int64 `json:"totalTimeWithMicrophone" db:"total_time_with_microphone"`
	TotalTimeWithVideo      int64 `json:"totalTimeWithVideo"      db:"total_time_with_video"`
	TotalTimeWithScreencast int64 `json:"totalTimeWithScreencast" db:"total_time_with_screencast"`
}

// StartedAt returns the session-start timestamp for the given kind.
func (a *AudioVideoActivities) StartedAt(kind SessionKind) int64 {
	switch kind {
	case SessionVoiceChannel:
		return a.JoinedVoiceChannelAt
	case SessionMicrophone:
		return a.EnabledMicrophoneAt
	case SessionVideo:
		return a.EnabledVideoAt
	case SessionScreencast:
		return a.EnabledScreencastAt
	}
	return 0
}

// SetStartedAt stamps the session-start timestamp for the given kind.
func (a *AudioVideoActivities) SetStartedAt(kind SessionKind, epochMs int64) {
	switch kind {
	case SessionVoiceChannel:
		a.JoinedVoiceChannelAt = epochMs
	case SessionMicrophone:
		a.EnabledMicrophoneAt = epochMs
	case SessionVideo:
		a.EnabledVideoAt = epochMs
	case SessionScreencast:
		a.EnabledScreencastAt = epochMs
	}
}

// AddMinutes accumulates elapsed minutes onto the cumulative total for the kind.
func (a *AudioVideoActivities) AddMinutes(kind SessionKind, minutes int64) {
	switch kind {
	case SessionVoiceChannel:
		a.TotalTimeInVoiceChannel += minutes
	case SessionMicrophone:
		a.TotalTimeWithMicrophone += minutes
	case SessionVideo:
		a.TotalTimeWithVideo += minutes
	case SessionScreencast:
		a.TotalTimeWithScreencast += minutes
	}
}

// ActivityRecord is the per-(user, guild) engagement aggregate.
// ActivityScore is derived on every write and never independently mutated.
type ActivityRecord struct {
	ID             string `json:"id"             db:"id"`
	UserID         string `json:"userId"         db:"user_id"`
	GuildID        string `json:"guildId"        db:"guild_id"`
	MessageCount   int64  `json:"messageCount"   db:"message_count"`
	ReplyCount     int64  `json:"replyCount"     db:"reply_count"`
	ReactionCount  int64  `json:"reactionCount"  db:"reaction_count"`
	MentionedCount int64  `json:"mentionedCount" db:"mentioned_count"`
	FrequencyCounts
	MessageLengthCounts
	AudioVideoActivities
	ActivityScore int64  `json:"activityScore" db:"activity_score"`
	UpdatedAt     int64  `json:"updatedAt"     db:"updated_at"` // epoch milliseconds
	Version       string `json:"version"       db:"version"`
}
