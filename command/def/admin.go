package def

import "github.com/bwmarrin/discordgo"

var adminPermission int64 = discordgo.PermissionAdministrator

var CheckEngagementCommand = &discordgo.ApplicationCommand{
	Name:                     "check_engagement",
	Description:              "Check who hasn't engaged",
	DefaultMemberPermissions: &adminPermission,
}

var ResetSessionCommand = &discordgo.ApplicationCommand{
	Name:                     "reset_session",
	Description:              "Reset all engagement data (Admin only)",
	DefaultMemberPermissions: &adminPermission,
}

var SetYapChannelCommand = &discordgo.ApplicationCommand{
	Name:                     "set_yap_channel",
	Description:              "Set or add the current channel as an allowed post channel",
	DefaultMemberPermissions: &adminPermission,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "add",
			Description: "If true, add this channel to the allowed list, otherwise replace the list with only this channel",
			Required:    false,
		},
	},
}

var SetLogCommand = &discordgo.ApplicationCommand{
	Name:                     "set_log",
	Description:              "Set the log channel (default: current channel)",
	DefaultMemberPermissions: &adminPermission,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to receive activity logs",
			Required:    false,
		},
	},
}

var SetReportCommand = &discordgo.ApplicationCommand{
	Name:                     "set_report",
	Description:              "Set the report channel (default: current channel)",
	DefaultMemberPermissions: &adminPermission,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to receive engagement reports",
			Required:    false,
		},
	},
}
