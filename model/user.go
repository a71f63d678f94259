package model

// User represents a creator tracked by the bot.
type User struct {
	UserID      string
	DisplayName string
	TotalPoints int
	CreatedAt   int64
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	UserID      string
	DisplayName string
	Points      int
}
