package models

import "time"

// GuildLink is a named URL configured per guild, returned by link commands.
type GuildLink struct {
	ID        string    `json:"id"         db:"id"`
	GuildID   string    `json:"guild_id"   db:"guild_id"`
	Name      string    `json:"name"       db:"name"`
	URL       string    `json:"url"        db:"url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
