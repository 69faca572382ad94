package models

import "time"

// SubjectType discriminates what an exclusion applies to.
type SubjectType string

const (
	SubjectTypeUser    SubjectType = "user"
	SubjectTypeChannel SubjectType = "channel"
)

// Exclusion marks a user or channel as excluded from tracking within a guild.
type Exclusion struct {
	ID          string      `json:"id"          db:"id"`
	SubjectType SubjectType `json:"subjectType" db:"subject_type"`
	SubjectID   string      `json:"subjectId"   db:"subject_id"`
	GuildID     string      `json:"guildId"     db:"guild_id"`
	Date        time.Time   `json:"date"        db:"date"`
}
