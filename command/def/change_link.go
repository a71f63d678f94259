package def

import "github.com/bwmarrin/discordgo"

var ChangeLinkCommand = &discordgo.ApplicationCommand{
	Name:        "change_link",
	Description: "Update your submitted link",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "new_link",
			Description: "The new URL to replace your previous submission",
			Required:    true,
		},
	},
}
