package engagement

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/engine"
)

// ChangeLinkHandler handles /change_link: the active submission's link is
// replaced in place, the rendered message is rerendered, and the change is
// logged with the old and new values. Engagements are preserved.
func ChangeLinkHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID

	var newLink string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "new_link" {
			newLink = opt.StringValue()
		}
	}

	sub, oldLink, err := eng.EditLink(userID, newLink)
	switch {
	case errors.Is(err, engine.ErrInvalidLink):
		respondEphemeral(s, i, "❌ Invalid URL format. Please provide a valid link starting with http:// or https://")
		return
	case errors.Is(err, engine.ErrNoActiveSubmission):
		respondEphemeral(s, i, "❌ You don't have an active session. Post a link in the Yap channel first.")
		return
	case err != nil:
		log.Printf("Error updating link for %s: %v", userID, err)
		respondEphemeral(s, i, "❌ Could not update your link right now. Please try again later.")
		return
	}

	// Rerender the tracked message; the database is already updated, so a
	// missing message only degrades the notification.
	displayName := displayNameOf(i.Member, i.Member.User)
	if sub.MessageID != "" && sub.ChannelID != "" {
		embed := updatedSubmissionEmbed(displayName, sub.Link, runtime.CompletionEmoji())
		if _, err := s.ChannelMessageEditEmbed(sub.ChannelID, sub.MessageID, embed); err != nil {
			log.Printf("Failed to rerender submission message %s: %v", sub.MessageID, err)
			respondEphemeral(s, i, "❌ Could not find your original message. Your link was updated, but please repost if the message is gone.")
			return
		}
	}

	logToChannel(s, &discordgo.MessageEmbed{
		Title:       "🔄 Link Updated",
		Description: fmt.Sprintf("%s changed their link", i.Member.User.Mention()),
		Color:       colorOrange,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Old Link", Value: oldLink, Inline: false},
			{Name: "New Link", Value: sub.Link, Inline: false},
		},
	})

	respondEphemeral(s, i, "✅ Link updated successfully! Others have been notified.")
}
