package config

import (
	"github.com/spf13/viper"

	"github.com/enryu8191/Creator-Bot/model"
)

// Cfg holds the process configuration loaded at startup.
var Cfg model.Config

// LoadConfig reads config.yaml from the working directory and environment
// overrides into Cfg.
func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("engageBot.db_path", "./data/engagement.db")
	viper.SetDefault("engageBot.completion_emoji", "✅")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
