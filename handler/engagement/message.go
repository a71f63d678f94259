package engagement

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/engine"
)

// MessageCreate handles new messages in allowed channels: the first
// http(s) link becomes the author's submission for the round, rerendered
// as a bot embed carrying the completion reaction.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !runtime.ChannelAllowed(m.ChannelID) {
		return
	}

	link := engine.ExtractLink(m.Content)
	if link == "" {
		deleteMessage(s, m.ChannelID, m.ID)
		sendTemporary(s, m.ChannelID, fmt.Sprintf("%s Please post only links in this channel!", m.Author.Mention()))
		return
	}

	active, err := eng.ActiveSubmission(m.Author.ID)
	if err != nil {
		log.Printf("Error checking active submission for %s: %v", m.Author.ID, err)
		return
	}
	if active != nil {
		deleteMessage(s, m.ChannelID, m.ID)
		sendTemporary(s, m.ChannelID, fmt.Sprintf("%s You can only post 1 link per session! Use `/change_link` to update.", m.Author.Mention()))
		return
	}

	displayName := displayNameOf(m.Member, m.Author)
	emoji := runtime.CompletionEmoji()

	deleteMessage(s, m.ChannelID, m.ID)

	formatted, err := s.ChannelMessageSendEmbed(m.ChannelID, submissionEmbed(displayName, m.Author.AvatarURL(""), link, emoji))
	if err != nil {
		log.Printf("Failed to post submission embed for %s: %v", m.Author.ID, err)
		return
	}

	if err := s.MessageReactionAdd(m.ChannelID, formatted.ID, emoji); err != nil {
		log.Printf("Failed to seed reaction on message %s: %v", formatted.ID, err)
	}

	if _, err := eng.Submit(m.Author.ID, displayName, link, formatted.ID, m.ChannelID); err != nil {
		// Lost a race with a concurrent submission event; drop the
		// rendered copy so only one tracked message remains.
		log.Printf("Failed to record submission for %s: %v", m.Author.ID, err)
		deleteMessage(s, m.ChannelID, formatted.ID)
		return
	}

	logToChannel(s, &discordgo.MessageEmbed{
		Title:       "📝 New Link Submitted",
		Description: fmt.Sprintf("%s posted their content", m.Author.Mention()),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Link", Value: link, Inline: false},
		},
	})
}

// deleteMessage removes a message, tolerating failures; cleanup here is
// best effort and the database stays authoritative.
func deleteMessage(s *discordgo.Session, channelID, messageID string) {
	if err := s.ChannelMessageDelete(channelID, messageID); err != nil {
		log.Printf("Failed to delete message %s in channel %s: %v", messageID, channelID, err)
	}
}

// displayNameOf prefers the guild nickname over the account username.
func displayNameOf(member *discordgo.Member, author *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if author.GlobalName != "" {
		return author.GlobalName
	}
	return author.Username
}
