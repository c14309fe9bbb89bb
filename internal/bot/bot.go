package bot

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ktsuji/shorekeeper/internal/config"
	"github.com/ktsuji/shorekeeper/internal/db"
)

type Bot struct {
	session *discordgo.Session
	db      *db.DB
	cfg     *config.Config
	worker  *reportWorker
	now     func() time.Time
}

func New(cfg *config.Config, database *db.DB) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		db:      database,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().In(cfg.Location) },
	}
	bot.worker = newReportWorker(session, database, cfg, bot.now)

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.worker.start()
	log.Println("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	b.worker.stop()
	return b.session.Close()
}
