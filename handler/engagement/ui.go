package engagement

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	colorBlue   = 0x3498DB
	colorGreen  = 0x2ECC71
	colorYellow = 0xF1C40F
	colorOrange = 0xE67E22
	colorRed    = 0xE74C3C
	colorGold   = 0xFFD700
)

// noticeTTL is how long warning messages stay in the channel.
const noticeTTL = 5 * time.Second

// submissionEmbed renders a user's link as the tracked content message.
func submissionEmbed(displayName, avatarURL, link, emoji string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔗 %s's Content", displayName),
		Description: fmt.Sprintf("[Click here to engage](%s)", link),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Instructions",
				Value:  fmt.Sprintf("React with %s after engaging with this content to show support!", emoji),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Posted by %s", displayName)},
	}
	if avatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatarURL}
	}
	return embed
}

// updatedSubmissionEmbed rerenders the content message after a link change.
func updatedSubmissionEmbed(displayName, link, emoji string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔗 %s's Content", displayName),
		Description: fmt.Sprintf("[Click here to engage](%s)", link),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: "⚠️ **LINK UPDATED**", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("React with %s after engaging!", emoji)},
	}
}

// appendEngagedBy adds the engager's mention to the "Engaged By" field of
// the rendered content message. Best effort; the engagement is already
// durable when this runs.
func appendEngagedBy(s *discordgo.Session, channelID, messageID, mention string) {
	message, err := s.ChannelMessage(channelID, messageID)
	if err != nil || len(message.Embeds) == 0 {
		return
	}

	embed := message.Embeds[0]
	found := false
	for _, field := range embed.Fields {
		if field.Name == "Engaged By" {
			field.Value = field.Value + "\n" + mention
			found = true
			break
		}
	}
	if !found {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Engaged By",
			Value:  mention,
			Inline: false,
		})
	}

	if _, err := s.ChannelMessageEditEmbed(channelID, messageID, embed); err != nil {
		log.Printf("Failed to update engagement list on message %s: %v", messageID, err)
	}
}

// respondEphemeral answers an interaction with an ephemeral text message.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// respondEphemeralEmbed answers an interaction with an ephemeral embed.
func respondEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// updateComponentMessage replaces the message a component interaction came
// from, clearing its buttons.
func updateComponentMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("Failed to update component message: %v", err)
	}
}

// sendTemporary posts a notice to the channel and removes it shortly
// after, mirroring the delete-after behavior of channel warnings.
func sendTemporary(s *discordgo.Session, channelID, content string) {
	message, err := s.ChannelMessageSend(channelID, content)
	if err != nil {
		log.Printf("Failed to send notice to channel %s: %v", channelID, err)
		return
	}
	time.AfterFunc(noticeTTL, func() {
		if err := s.ChannelMessageDelete(channelID, message.ID); err != nil {
			log.Printf("Failed to delete notice %s: %v", message.ID, err)
		}
	})
}

// logToChannel sends an embed to the configured log channel, if any.
func logToChannel(s *discordgo.Session, embed *discordgo.MessageEmbed) {
	channelID := runtime.LogChannelID()
	if channelID == "" {
		return
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send log embed to channel %s: %v", channelID, err)
	}
}
