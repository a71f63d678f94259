package engagement

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/engine"
)

// MessageReactionAdd tracks engagement: a completion reaction on another
// user's submission message records an edge and awards the engager a
// point. Every branch is safe under duplicate or out-of-order delivery.
func MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}
	if r.Emoji.Name != runtime.CompletionEmoji() {
		return
	}
	if !runtime.ChannelAllowed(r.ChannelID) {
		return
	}

	sub, err := eng.SubmissionByMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("Error resolving submission for message %s: %v", r.MessageID, err)
		return
	}
	if sub == nil {
		// Not a tracked submission message.
		return
	}

	err = eng.RecordEngagement(r.UserID, sub.UserID)
	switch {
	case err == nil:
		appendEngagedBy(s, r.ChannelID, r.MessageID, mention(r.UserID))
		logToChannel(s, &discordgo.MessageEmbed{
			Title:       "✅ New Engagement",
			Description: fmt.Sprintf("%s engaged with %s's content", mention(r.UserID), mention(sub.UserID)),
			Color:       colorGreen,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Points Earned", Value: "1 point", Inline: true},
			},
		})

	case errors.Is(err, engine.ErrSelfEngagement):
		removeReaction(s, r)
		sendTemporary(s, r.ChannelID, fmt.Sprintf("%s You cannot engage with your own content! Please engage with others' content instead.", mention(r.UserID)))

	case errors.Is(err, engine.ErrAlreadyEngaged):
		removeReaction(s, r)
		sendTemporary(s, r.ChannelID, fmt.Sprintf("%s You have already engaged with this content!", mention(r.UserID)))

	case errors.Is(err, engine.ErrNoActiveSubmission):
		// The reaction raced a reset; drop it silently.

	default:
		log.Printf("Error recording engagement by %s on message %s: %v", r.UserID, r.MessageID, err)
	}
}

func removeReaction(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.APIName(), r.UserID); err != nil {
		log.Printf("Failed to remove reaction by %s on message %s: %v", r.UserID, r.MessageID, err)
	}
}

func mention(userID string) string {
	return "<@" + userID + ">"
}
