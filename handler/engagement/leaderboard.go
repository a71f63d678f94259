package engagement

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// LeaderboardHandler answers /leaderboard with the top creators by points.
func LeaderboardHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	leaders, err := eng.Leaderboard(10)
	if err != nil {
		log.Printf("Error loading leaderboard: %v", err)
		respondEphemeral(s, i, "❌ Could not load the leaderboard right now. Please try again later.")
		return
	}

	if len(leaders) == 0 {
		respond(s, i, &discordgo.MessageEmbed{
			Title:       "🏆 Engagement Leaderboard",
			Description: "No engagement data yet. Start engaging to appear here!",
			Color:       colorBlue,
		})
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var text string
	for idx, entry := range leaders {
		medal := fmt.Sprintf("`#%d`", idx+1)
		if idx < len(medals) {
			medal = medals[idx]
		}
		plural := "s"
		if entry.Points == 1 {
			plural = ""
		}
		text += fmt.Sprintf("%s **%s** - %d point%s\n", medal, entry.DisplayName, entry.Points, plural)
	}

	respond(s, i, &discordgo.MessageEmbed{
		Title:       "🏆 Engagement Leaderboard",
		Description: text,
		Color:       colorGold,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Keep engaging to climb the ranks!"},
	})
}

// respond sends a non-ephemeral embed response; the leaderboard is public.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
