package engagement

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/engine"
)

// StatusHandler answers /status with the caller's link, the engagement
// count among the other active creators, and who has yet to react.
func StatusHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID

	status, err := eng.StatusFor(userID)
	if errors.Is(err, engine.ErrNoActiveSubmission) {
		respondEphemeralEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "📊 Engagement Status",
			Description: "You haven't submitted a link yet for this session.",
			Color:       colorOrange,
		})
		return
	}
	if err != nil {
		log.Printf("Error computing status for %s: %v", userID, err)
		respondEphemeral(s, i, "❌ Could not load your status right now. Please try again later.")
		return
	}

	color := colorYellow
	if status.RequiredCount > 0 && status.EngagedCount >= status.RequiredCount {
		color = colorGreen
	}

	embed := &discordgo.MessageEmbed{
		Title: "📊 Engagement Status",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Your Link", Value: status.Link, Inline: false},
			{Name: "Status", Value: fmt.Sprintf("%d/%d", status.EngagedCount, status.RequiredCount), Inline: true},
		},
	}

	if status.RequiredCount > 0 {
		pendingValue := "Everyone has engaged with your post. 🎉"
		if len(status.PendingUserIDs) > 0 {
			mentions := make([]string, len(status.PendingUserIDs))
			for idx, id := range status.PendingUserIDs {
				mentions[idx] = mention(id)
			}
			pendingValue = strings.Join(mentions, "\n")
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Creators have yet to react",
			Value:  pendingValue,
			Inline: false,
		})
	}

	respondEphemeralEmbed(s, i, embed)
}
