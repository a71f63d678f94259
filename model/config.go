package model

// Config corresponds to the top-level structure of config.yaml
type Config struct {
	Token     string    `mapstructure:"TOKEN"`
	Commands  Commands  `mapstructure:"commands"`
	EngageBot EngageBot `mapstructure:"engageBot"`
}

// Commands corresponds to the "commands" section
type Commands struct {
	Guilds []string `mapstructure:"guilds"`
	Auth   Auth     `mapstructure:"auth"`
}

// Auth corresponds to the "auth" section
type Auth struct {
	Developers  []string `mapstructure:"Developers"`
	AdminsRoles []string `mapstructure:"AdminsRoles"`
}

// EngageBot corresponds to the "engageBot" section. These are the seed
// values; runtime overrides stored in the database take precedence.
type EngageBot struct {
	DBPath            string   `mapstructure:"db_path"`
	CompletionEmoji   string   `mapstructure:"completion_emoji"`
	AllowedChannelIDs []string `mapstructure:"allowed_channel_ids"`
	LogChannelID      string   `mapstructure:"log_channel_id"`
	ReportChannelID   string   `mapstructure:"report_channel_id"`
}
