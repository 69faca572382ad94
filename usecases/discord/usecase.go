package discord

import (
	"context"
	"log"
	"slices"

	"guildpulse/clients"
	"guildpulse/models"
	"guildpulse/services"
)

// RolesConfig carries the guild role names the tracker gates on. Empty
// names disable the corresponding gate.
type RolesConfig struct {
	// MemberRole must be held by a user for their events to be tracked,
	// if the guild defines the role at all
	MemberRole string
	// AdminRole must be held to run admin commands
	AdminRole string
}

// DiscordUseCase handles all Discord-specific operations: folding gateway
// events into activity records and serving the slash-command surface.
type DiscordUseCase struct {
	discordClient     clients.DiscordClient
	activityService   services.ActivityService
	exclusionsService services.ExclusionsService
	guildLinksService services.GuildLinksService
	trackerService    services.TrackerService
	roles             RolesConfig
}

func NewDiscordUseCase(
	discordClient clients.DiscordClient,
	activityService services.ActivityService,
	exclusionsService services.ExclusionsService,
	guildLinksService services.GuildLinksService,
	trackerService services.TrackerService,
	roles RolesConfig,
) *DiscordUseCase {
	return &DiscordUseCase{
		discordClient:     discordClient,
		activityService:   activityService,
		exclusionsService: exclusionsService,
		guildLinksService: guildLinksService,
		trackerService:    trackerService,
		roles:             roles,
	}
}

// preconditionsFulfilled decides whether an event should be tracked at all.
// A false result is a regular short-circuit; an error means a lookup failed
// and the caller must not treat the event as "not excluded".
func (u *DiscordUseCase) preconditionsFulfilled(
	ctx context.Context,
	guildID, channelID, userID string,
) (bool, error) {
	if guildID == "" || channelID == "" || userID == "" {
		log.Printf("🔍 Event is missing guild, channel or user id - ignoring")
		return false, nil
	}

	if !u.trackerService.IsRunning() {
		log.Printf("🔍 Tracker is paused - ignoring event")
		return false, nil
	}

	// When the guild defines the member role, only members holding it are tracked
	if u.roles.MemberRole != "" {
		guildRoles, err := u.discordClient.GuildRoleNames(guildID)
		if err != nil {
			return false, err
		}
		if slices.Contains(guildRoles, u.roles.MemberRole) {
			memberRoles, err := u.discordClient.MemberRoleNames(guildID, userID)
			if err != nil {
				return false, err
			}
			if !slices.Contains(memberRoles, u.roles.MemberRole) {
				log.Printf("🔍 Guild %s gates on role %q but user %s does not hold it - ignoring",
					guildID, u.roles.MemberRole, userID)
				return false, nil
			}
		}
	}

	userExcluded, err := u.exclusionsService.IsExcluded(ctx, models.SubjectTypeUser, userID, guildID)
	if err != nil {
		return false, err
	}
	if userExcluded {
		log.Printf("🔍 User %s is excluded in guild %s - ignoring event", userID, guildID)
		return false, nil
	}

	channelExcluded, err := u.exclusionsService.IsExcluded(ctx, models.SubjectTypeChannel, channelID, guildID)
	if err != nil {
		return false, err
	}
	if channelExcluded {
		log.Printf("🔍 Channel %s is excluded in guild %s - ignoring event", channelID, guildID)
		return false, nil
	}

	return true, nil
}
