package bot

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/enryu8191/Creator-Bot/command"
	"github.com/enryu8191/Creator-Bot/config"
	"github.com/enryu8191/Creator-Bot/db"
	"github.com/enryu8191/Creator-Bot/engine"
	"github.com/enryu8191/Creator-Bot/handler/engagement"
)

var dg *discordgo.Session

// Start wires the store, engine and handlers together and runs the bot
// until interrupted.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}

	if config.Cfg.Token == "" {
		log.Printf("Warning: Token is empty!")
	}

	if dir := filepath.Dir(config.Cfg.EngageBot.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Error creating data directory: %v", err)
			return
		}
	}

	store, err := db.Open(config.Cfg.EngageBot.DBPath)
	if err != nil {
		log.Printf("Error opening database: %v", err)
		return
	}
	defer store.Close()
	log.Println("Database connection initialized successfully.")

	eng := engine.New(store)

	runtime := config.NewRuntime(store, config.Cfg.EngageBot)
	if err := runtime.Load(); err != nil {
		log.Printf("Warning: failed to load runtime config overrides: %v", err)
	}

	engagement.Setup(eng, runtime)

	// Create a new Discord session using the provided bot token.
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	for _, guildID := range config.Cfg.Commands.Guilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
