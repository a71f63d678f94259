package engagement

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/utils"
)

// CheckEngagementHandler handles /check_engagement: creators who still owe
// a reaction on someone's submission are reported to the report channel.
func CheckEngagementHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member) {
		respondEphemeral(s, i, "You don't have permission to do that.")
		return
	}

	nonEngaged, err := eng.NonEngagedUsers()
	if err != nil {
		log.Printf("Error computing non-engaged users: %v", err)
		respondEphemeral(s, i, "❌ Could not run the engagement check right now. Please try again later.")
		return
	}

	if len(nonEngaged) == 0 {
		respondEphemeralEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "✅ All Clear!",
			Description: "All creators have completed their engagement!",
			Color:       colorGreen,
		})
		return
	}

	reportChannelID := runtime.ReportChannelID()
	if reportChannelID == "" {
		respondEphemeral(s, i, "❌ Report channel not found. Check configuration.")
		return
	}

	mentions := make([]string, len(nonEngaged))
	for idx, user := range nonEngaged {
		mentions[idx] = mention(user.UserID)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚠️ Engagement Report",
		Description: "The following creators still need to engage with others' content:",
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Action Required", Value: strings.Join(mentions, "\n"), Inline: false},
			{
				Name: "Instructions",
				Value: fmt.Sprintf("To complete engagement:\n"+
					"1. View another creator's content\n"+
					"2. React with %s on their post", runtime.CompletionEmoji()),
				Inline: false,
			},
		},
	}

	if _, err := s.ChannelMessageSendEmbed(reportChannelID, embed); err != nil {
		log.Printf("Failed to send engagement report to channel %s: %v", reportChannelID, err)
		respondEphemeral(s, i, "❌ Could not post to the report channel. Check configuration.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("✅ Report sent to <#%s>", reportChannelID))
}

// ResetSessionHandler handles /reset_session. The reset is irreversible,
// so it requires a second confirmation step; the confirm button carries a
// single-use token bound to the requesting admin.
func ResetSessionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member) {
		respondEphemeral(s, i, "You don't have permission to do that.")
		return
	}

	token := addPendingReset(i.Member.User.ID)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "⚠️ Confirm Session Reset",
					Description: "This will delete ALL current engagement data. Are you sure?",
					Color:       colorRed,
				},
			},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Confirm Reset",
							Style:    discordgo.DangerButton,
							CustomID: "confirm_reset:" + token,
						},
						discordgo.Button{
							Label:    "Cancel",
							Style:    discordgo.SecondaryButton,
							CustomID: "cancel_reset",
						},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to reset_session: %v", err)
	}
}

// ConfirmResetHandler executes the reset once the requesting admin pushes
// the confirm button.
func ConfirmResetHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member) {
		respondEphemeral(s, i, "You don't have permission to do that.")
		return
	}

	parts := strings.SplitN(i.MessageComponentData().CustomID, ":", 2)
	if len(parts) != 2 {
		updateComponentMessage(s, i, "❌ This confirmation is no longer valid. Run `/reset_session` again.")
		return
	}

	entry, ok := takePendingReset(parts[1])
	if !ok || entry.RequesterID != i.Member.User.ID {
		updateComponentMessage(s, i, "❌ This confirmation expired or belongs to someone else. Run `/reset_session` again.")
		return
	}

	if err := eng.ResetAll(); err != nil {
		log.Printf("Error resetting session data: %v", err)
		updateComponentMessage(s, i, "❌ Reset failed. Please try again.")
		return
	}

	logToChannel(s, &discordgo.MessageEmbed{
		Title:       "🔄 Session Reset",
		Description: fmt.Sprintf("All engagement data cleared by %s", i.Member.User.Mention()),
		Color:       colorBlue,
	})

	updateComponentMessage(s, i, "✅ Session reset complete! Ready for a new engagement round.")
}

// CancelResetHandler dismisses the confirmation prompt.
func CancelResetHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	updateComponentMessage(s, i, "❌ Reset cancelled.")
}

// SetYapChannelHandler handles /set_yap_channel: the current channel
// replaces the allowed-channel set, or extends it with add:true.
func SetYapChannelHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member) {
		respondEphemeral(s, i, "You don't have permission to do that.")
		return
	}

	add := false
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "add" {
			add = opt.BoolValue()
		}
	}

	if err := runtime.SetAllowedChannels([]string{i.ChannelID}, add); err != nil {
		log.Printf("Error persisting allowed channels: %v", err)
		respondEphemeral(s, i, "❌ Could not save the channel configuration. Please try again.")
		return
	}

	verb := "set as"
	if add {
		verb = "added to"
	}
	respondEphemeral(s, i, fmt.Sprintf("✅ <#%s> %s allowed channels.", i.ChannelID, verb))
}

// SetLogHandler handles /set_log.
func SetLogHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member) {
		respondEphemeral(s, i, "You don't have permission to do that.")
		return
	}

	channelID := channelOptionOrCurrent(i)
	if err := runtime.SetLogChannel(channelID); err != nil {
		log.Printf("Error persisting log channel: %v", err)
		respondEphemeral(s, i, "❌ Could not save the channel configuration. Please try again.")
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("✅ Log channel set to <#%s>", channelID))
}

// SetReportHandler handles /set_report.
func SetReportHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.CheckAuth(i.Member) {
		respondEphemeral(s, i, "You don't have permission to do that.")
		return
	}

	channelID := channelOptionOrCurrent(i)
	if err := runtime.SetReportChannel(channelID); err != nil {
		log.Printf("Error persisting report channel: %v", err)
		respondEphemeral(s, i, "❌ Could not save the channel configuration. Please try again.")
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("✅ Report channel set to <#%s>", channelID))
}

func channelOptionOrCurrent(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			if ch := opt.ChannelValue(nil); ch != nil {
				return ch.ID
			}
		}
	}
	return i.ChannelID
}
