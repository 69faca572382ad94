package discord

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strconv"

	"guildpulse/core"
	"guildpulse/models"
)

const defaultLeaderboardSize = 3

// ProcessCommand executes a slash command and returns the reply text to
// show the invoking user. Failures are converted into "error while ..."
// replies rather than propagated, so the user always gets feedback.
func (u *DiscordUseCase) ProcessCommand(ctx context.Context, cmd models.CommandInvocation) string {
	log.Printf("📋 Starting to process command %s from user %s in guild %s", cmd.Name, cmd.UserID, cmd.GuildID)

	if slices.Contains(models.AdminCommands, cmd.Name) {
		allowed, err := u.invokerIsAdmin(cmd.GuildID, cmd.UserID)
		if err != nil {
			log.Printf("❌ Failed to resolve roles for command %s: %v", cmd.Name, err)
			return "error while checking permissions"
		}
		if !allowed {
			return fmt.Sprintf("only %s is allowed to perform this command", u.roles.AdminRole)
		}
	}

	switch cmd.Name {
	case models.CommandExcludeUser:
		return u.excludeSubject(ctx, cmd, models.SubjectTypeUser, "user-id", "user")
	case models.CommandIncludeUser:
		return u.includeSubject(ctx, cmd, models.SubjectTypeUser, "user-id", "user")
	case models.CommandViewExcludedUsers:
		return u.viewExclusions(ctx, cmd, models.SubjectTypeUser, "userId")
	case models.CommandExcludeChannel:
		return u.excludeSubject(ctx, cmd, models.SubjectTypeChannel, "channel-id", "channel")
	case models.CommandIncludeChannel:
		return u.includeSubject(ctx, cmd, models.SubjectTypeChannel, "channel-id", "channel")
	case models.CommandViewExcludedChannels:
		return u.viewExclusions(ctx, cmd, models.SubjectTypeChannel, "channelId")
	case models.CommandToggleTrackerStatus:
		return fmt.Sprintf("tracker mode changed to %s", trackerStatusLabel(u.trackerService.Toggle()))
	case models.CommandViewTrackerStatus:
		return fmt.Sprintf("tracker is currently %s", trackerStatusLabel(u.trackerService.IsRunning()))
	case models.CommandTopUsers:
		return u.topUsers(ctx, cmd)
	case models.CommandSetGuildLink:
		return u.setGuildLink(ctx, cmd)
	case models.CommandViewGuildLink:
		return u.viewGuildLink(ctx, cmd)
	case models.CommandViewGuildLinks:
		return u.viewGuildLinks(ctx, cmd)
	default:
		return fmt.Sprintf("unknown command: %s", cmd.Name)
	}
}

// invokerIsAdmin reports whether the invoking user holds the admin role.
// An empty admin role name disables the gate.
func (u *DiscordUseCase) invokerIsAdmin(guildID, userID string) (bool, error) {
	if u.roles.AdminRole == "" {
		return true, nil
	}
	memberRoles, err := u.discordClient.MemberRoleNames(guildID, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(memberRoles, u.roles.AdminRole), nil
}

func (u *DiscordUseCase) excludeSubject(
	ctx context.Context,
	cmd models.CommandInvocation,
	subjectType models.SubjectType,
	optionName, label string,
) string {
	subjectID := cmd.Options[optionName]
	if subjectID == "" {
		return fmt.Sprintf("%s is required", optionName)
	}
	if err := u.exclusionsService.Exclude(ctx, subjectType, subjectID, cmd.GuildID); err != nil {
		log.Printf("❌ Failed to exclude %s %s in guild %s: %v", label, subjectID, cmd.GuildID, err)
		return fmt.Sprintf("error while excluding %s", label)
	}
	return fmt.Sprintf("%s excluded", label)
}

func (u *DiscordUseCase) includeSubject(
	ctx context.Context,
	cmd models.CommandInvocation,
	subjectType models.SubjectType,
	optionName, label string,
) string {
	subjectID := cmd.Options[optionName]
	if subjectID == "" {
		return fmt.Sprintf("%s is required", optionName)
	}
	err := u.exclusionsService.Include(ctx, subjectType, subjectID, cmd.GuildID)
	if core.IsNotFoundError(err) {
		return fmt.Sprintf("%s is not excluded", label)
	}
	if err != nil {
		log.Printf("❌ Failed to include %s %s in guild %s: %v", label, subjectID, cmd.GuildID, err)
		return fmt.Sprintf("error while including %s", label)
	}
	return fmt.Sprintf("%s included", label)
}

func (u *DiscordUseCase) viewExclusions(
	ctx context.Context,
	cmd models.CommandInvocation,
	subjectType models.SubjectType,
	header string,
) string {
	exclusions, err := u.exclusionsService.ListExclusions(ctx, subjectType, cmd.GuildID)
	if err != nil {
		log.Printf("❌ Failed to list excluded %ss in guild %s: %v", subjectType, cmd.GuildID, err)
		return fmt.Sprintf("error while fetching excluded %ss", subjectType)
	}
	return formatExclusionsTable(header, exclusions)
}

func (u *DiscordUseCase) topUsers(ctx context.Context, cmd models.CommandInvocation) string {
	n := defaultLeaderboardSize
	if raw := cmd.Options["count"]; raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return "count must be a positive number"
		}
		n = parsed
	}
	records, err := u.activityService.MostActiveUsers(ctx, n, cmd.GuildID)
	if err != nil {
		log.Printf("❌ Failed to fetch top users in guild %s: %v", cmd.GuildID, err)
		return "error while fetching top users"
	}
	return formatLeaderboard(records)
}

func (u *DiscordUseCase) setGuildLink(ctx context.Context, cmd models.CommandInvocation) string {
	name := cmd.Options["name"]
	url := cmd.Options["url"]
	if name == "" || url == "" {
		return "name and url are required"
	}
	if _, err := u.guildLinksService.SetLink(ctx, cmd.GuildID, name, url); err != nil {
		log.Printf("❌ Failed to set link %s in guild %s: %v", name, cmd.GuildID, err)
		return "error while setting guild link"
	}
	return fmt.Sprintf("link %s set", name)
}

func (u *DiscordUseCase) viewGuildLink(ctx context.Context, cmd models.CommandInvocation) string {
	name := cmd.Options["name"]
	if name == "" {
		return "name is required"
	}
	maybeLink, err := u.guildLinksService.GetLink(ctx, cmd.GuildID, name)
	if err != nil {
		log.Printf("❌ Failed to fetch link %s in guild %s: %v", name, cmd.GuildID, err)
		return "error while fetching guild link"
	}
	link, ok := maybeLink.Get()
	if !ok {
		return "N/A"
	}
	return link.URL
}

func (u *DiscordUseCase) viewGuildLinks(ctx context.Context, cmd models.CommandInvocation) string {
	links, err := u.guildLinksService.ListLinks(ctx, cmd.GuildID)
	if err != nil {
		log.Printf("❌ Failed to list links in guild %s: %v", cmd.GuildID, err)
		return "error while fetching guild links"
	}
	return formatGuildLinks(links)
}

func trackerStatusLabel(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}
