package models

// CommandRequest is a parsed standings slash command invocation
type CommandRequest struct {
	// Kind of standings requested
	Kind StandingsKind

	// Year of the season
	Year int

	// GuildID the command was invoked in, empty for DMs
	GuildID string

	// UserID of the invoking user
	UserID string
}
