package discord

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"guildpulse/models"
)

// ProcessMessageEvent folds a guild message into the author's activity
// record. A message mentioning other users counts as a reply, and every
// mentioned user gets a mention credit of their own.
func (u *DiscordUseCase) ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	log.Printf("📋 Starting to process message %s from user %s in guild %s",
		event.MessageID, event.UserID, event.GuildID)

	ok, err := u.preconditionsFulfilled(ctx, event.GuildID, event.ChannelID, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to check message preconditions: %w", err)
	}
	if !ok {
		return nil
	}

	var messageIncrement, replyIncrement int64
	if len(event.Mentions) > 0 {
		replyIncrement = 1
		if err := u.activityService.RecordMentions(ctx, event.Mentions, event.GuildID); err != nil {
			return fmt.Errorf("failed to record mentions: %w", err)
		}
	} else {
		messageIncrement = 1
	}

	err = u.activityService.UpsertActivity(
		ctx,
		event.UserID,
		event.GuildID,
		messageIncrement,
		replyIncrement,
		0,
		0,
		utf8.RuneCountInString(event.Content),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert message activity: %w", err)
	}

	log.Printf("📋 Completed successfully - processed message %s from user %s", event.MessageID, event.UserID)
	return nil
}

// ProcessReactionEvent credits a reaction to the reacting user.
func (u *DiscordUseCase) ProcessReactionEvent(ctx context.Context, event models.DiscordReactionEvent) error {
	log.Printf("📋 Starting to process reaction %s from user %s in guild %s",
		event.EmojiName, event.UserID, event.GuildID)

	ok, err := u.preconditionsFulfilled(ctx, event.GuildID, event.ChannelID, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to check reaction preconditions: %w", err)
	}
	if !ok {
		return nil
	}

	if err := u.activityService.UpsertActivity(ctx, event.UserID, event.GuildID, 0, 0, 1, 0, 0); err != nil {
		return fmt.Errorf("failed to upsert reaction activity: %w", err)
	}

	log.Printf("📋 Completed successfully - processed reaction from user %s", event.UserID)
	return nil
}

// ProcessVoiceStateEvent diffs the old and new voice states and opens or
// closes the matching audio/video sessions. One update can carry several
// transitions at once, e.g. disconnecting while unmuted closes both the
// voice channel and the microphone session.
func (u *DiscordUseCase) ProcessVoiceStateEvent(ctx context.Context, event models.DiscordVoiceStateEvent) error {
	log.Printf("📋 Starting to process voice state update for user %s in guild %s", event.UserID, event.GuildID)

	// Leave events carry no new channel, so fall back to the old one
	channelID := event.New.ChannelID
	if channelID == "" {
		channelID = event.Old.ChannelID
	}

	ok, err := u.preconditionsFulfilled(ctx, event.GuildID, channelID, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to check voice state preconditions: %w", err)
	}
	if !ok {
		return nil
	}

	type transition struct {
		kind  models.SessionKind
		start bool
		when  bool
	}
	transitions := []transition{
		{models.SessionScreencast, true, !event.Old.Streaming && event.New.Streaming},
		{models.SessionScreencast, false, event.Old.Streaming && !event.New.Streaming},
		{models.SessionVideo, true, !event.Old.SelfVideo && event.New.SelfVideo},
		{models.SessionVideo, false, event.Old.SelfVideo && !event.New.SelfVideo},
		{models.SessionMicrophone, true, event.Old.SelfMute && !event.New.SelfMute && event.New.ChannelID != ""},
		{models.SessionMicrophone, false, !event.Old.SelfMute && event.New.SelfMute && event.New.ChannelID != ""},
		{models.SessionVoiceChannel, true, event.Old.ChannelID == "" && event.New.ChannelID != ""},
		{models.SessionMicrophone, true, event.Old.ChannelID == "" && event.New.ChannelID != "" && !event.New.SelfMute},
		{models.SessionVoiceChannel, false, event.Old.ChannelID != "" && event.New.ChannelID == ""},
		{models.SessionMicrophone, false, event.Old.ChannelID != "" && event.New.ChannelID == "" && !event.Old.SelfMute},
	}

	for _, tr := range transitions {
		if !tr.when {
			continue
		}
		if tr.start {
			err = u.activityService.StartSession(ctx, event.UserID, event.GuildID, tr.kind)
		} else {
			err = u.activityService.EndSession(ctx, event.UserID, event.GuildID, tr.kind)
		}
		if err != nil {
			return fmt.Errorf("failed to process %s session transition: %w", tr.kind, err)
		}
	}

	log.Printf("📋 Completed successfully - processed voice state update for user %s", event.UserID)
	return nil
}
