package utils

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/config"
)

// CheckAuth reports whether the member may run admin commands: guild
// administrators, configured developers, or holders of an admin role.
func CheckAuth(member *discordgo.Member) bool {
	if member == nil || member.User == nil {
		return false
	}

	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	authConfig := config.Cfg.Commands.Auth

	if slices.Contains(authConfig.Developers, member.User.ID) {
		return true
	}

	for _, role := range member.Roles {
		if slices.Contains(authConfig.AdminsRoles, role) {
			return true
		}
	}

	return false
}
