package discord

import (
	"fmt"
	"strings"

	"guildpulse/models"
)

const noResultsMessage = "no results"

func formatExclusionsTable(header string, exclusions []*models.Exclusion) string {
	if len(exclusions) == 0 {
		return noResultsMessage
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - date\n", header)
	for _, exclusion := range exclusions {
		fmt.Fprintf(&sb, "%s - %s\n", exclusion.SubjectID, exclusion.Date.Format("2006-01-02"))
	}
	return sb.String()
}

func formatLeaderboard(records []*models.ActivityRecord) string {
	if len(records) == 0 {
		return noResultsMessage
	}
	var sb strings.Builder
	sb.WriteString("userId - score\n")
	for _, record := range records {
		fmt.Fprintf(&sb, "%s - %d\n", record.UserID, record.ActivityScore)
	}
	return sb.String()
}

func formatGuildLinks(links []*models.GuildLink) string {
	if len(links) == 0 {
		return noResultsMessage
	}
	var sb strings.Builder
	sb.WriteString("name - url\n")
	for _, link := range links {
		fmt.Fprintf(&sb, "%s - %s\n", link.Name, link.URL)
	}
	return sb.String()
}
