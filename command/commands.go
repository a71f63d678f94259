package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/command/def"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.StatusCommand,
	def.LeaderboardCommand,
	def.ChangeLinkCommand,
	def.CheckEngagementCommand,
	def.ResetSessionCommand,
	def.SetYapChannelCommand,
	def.SetLogCommand,
	def.SetReportCommand,
}
