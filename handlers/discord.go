package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"guildpulse/models"
	usecase "guildpulse/usecases/discord"
)

// DiscordHandler adapts raw discordgo gateway events into tracker events
// and dispatches them to the use case layer.
type DiscordHandler struct {
	useCase *usecase.DiscordUseCase
}

func NewDiscordHandler(useCase *usecase.DiscordUseCase) *DiscordHandler {
	return &DiscordHandler{useCase: useCase}
}

// Register attaches the gateway handlers to a session. Call before Open so
// no events are missed.
func (h *DiscordHandler) Register(session *discordgo.Session) {
	session.AddHandler(h.handleMessageCreate)
	session.AddHandler(h.handleReactionAdd)
	session.AddHandler(h.handleVoiceStateUpdate)
	session.AddHandler(h.handleInteractionCreate)
}

func (h *DiscordHandler) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	// DMs carry no guild id and are not tracked
	if m.GuildID == "" {
		return
	}

	mentions := make([]string, 0, len(m.Mentions))
	for _, mentioned := range m.Mentions {
		if mentioned.Bot || mentioned.ID == m.Author.ID {
			continue
		}
		mentions = append(mentions, mentioned.ID)
	}

	event := models.DiscordMessageEvent{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		UserID:    m.Author.ID,
		Content:   m.Content,
		Mentions:  mentions,
	}
	if err := h.useCase.ProcessMessageEvent(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process message event: %v", err)
	}
}

func (h *DiscordHandler) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" {
		return
	}
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	event := models.DiscordReactionEvent{
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		EmojiName: r.Emoji.Name,
	}
	if err := h.useCase.ProcessReactionEvent(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process reaction event: %v", err)
	}
}

func (h *DiscordHandler) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.GuildID == "" {
		return
	}

	var oldState models.DiscordVoiceState
	if v.BeforeUpdate != nil {
		oldState = models.DiscordVoiceState{
			ChannelID: v.BeforeUpdate.ChannelID,
			SelfMute:  v.BeforeUpdate.SelfMute,
			SelfVideo: v.BeforeUpdate.SelfVideo,
			Streaming: v.BeforeUpdate.SelfStream,
		}
	}

	event := models.DiscordVoiceStateEvent{
		GuildID: v.GuildID,
		UserID:  v.UserID,
		Old:     oldState,
		New: models.DiscordVoiceState{
			ChannelID: v.ChannelID,
			SelfMute:  v.SelfMute,
			SelfVideo: v.SelfVideo,
			Streaming: v.SelfStream,
		},
	}
	if err := h.useCase.ProcessVoiceStateEvent(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process voice state event: %v", err)
	}
}

func (h *DiscordHandler) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	cmd := models.CommandInvocation{
		Name:    data.Name,
		GuildID: i.GuildID,
		UserID:  interactionUserID(i),
		Options: commandOptions(data.Options),
	}

	reply := h.useCase.ProcessCommand(context.Background(), cmd)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: reply,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Failed to respond to command %s: %v", data.Name, err)
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// commandOptions flattens interaction options into the string map the use
// case layer consumes.
func commandOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	result := make(map[string]string, len(options))
	for _, option := range options {
		switch option.Type {
		case discordgo.ApplicationCommandOptionInteger:
			result[option.Name] = strconv.FormatInt(option.IntValue(), 10)
		case discordgo.ApplicationCommandOptionBoolean:
			result[option.Name] = strconv.FormatBool(option.BoolValue())
		case discordgo.ApplicationCommandOptionUser, discordgo.ApplicationCommandOptionChannel:
			result[option.Name] = fmt.Sprintf("%v", option.Value)
		default:
			result[option.Name] = option.StringValue()
		}
	}
	return result
}
