package def

import "github.com/bwmarrin/discordgo"

var StatusCommand = &discordgo.ApplicationCommand{
	Name:        "status",
	Description: "Check your engagement status",
}
