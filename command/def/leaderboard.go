package def

import "github.com/bwmarrin/discordgo"

var LeaderboardCommand = &discordgo.ApplicationCommand{
	Name:        "leaderboard",
	Description: "Display engagement leaderboard",
}
