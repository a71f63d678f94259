package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/handler"
	"github.com/enryu8191/Creator-Bot/handler/engagement"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(engagement.MessageCreate)
	s.AddHandler(engagement.MessageReactionAdd)

	// Intents required to read posts and track reactions.
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent
}
