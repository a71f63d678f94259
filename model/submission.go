package model

// Submission represents one user's content link for the current round.
// A user's "active" submission is the row with the highest ID; rows are
// never closed, only replaced by a full reset.
type Submission struct {
	ID        int64
	UserID    string
	Link      string
	MessageID string
	ChannelID string
	CreatedAt int64
	Completed bool
}
