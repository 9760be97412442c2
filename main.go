package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mbriand/atelier-bot/config"
	"github.com/mbriand/atelier-bot/database"
	"github.com/mbriand/atelier-bot/handlers"
	"github.com/mbriand/atelier-bot/scheduler"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration:", err)
		os.Exit(1)
	}
	log := newLogger(cfg)

	// os.Exit skips deferred cleanup, so the bolt file is closed inside
	// run on every failure path.
	if err := run(cfg, log); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	store, err := database.Open(cfg.DataDir, log)
	if err != nil {
		log.Error().Err(err).Str("dir", cfg.DataDir).Msg("failed to open data directory")
		return err
	}
	defer store.Close()

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")
		return err
	}
	session.Identify.Intents = discordgo.MakeIntent(
		discordgo.IntentsGuilds |
			discordgo.IntentsGuildMessages |
			discordgo.IntentsGuildMessageReactions |
			discordgo.IntentsGuildMembers |
			discordgo.IntentsDirectMessages)

	bot := handlers.New(store, cfg, log)
	router := bot.Router()
	router.Initialize(session)
	session.AddHandler(bot.ReactionAdd)
	session.AddHandler(bot.ReactionRemove)

	if err := session.Open(); err != nil {
		log.Error().Err(err).Msg("failed to connect to the gateway")
		return err
	}
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler.New(session, store, cfg.Location(), log).Start(ctx)
	go scheduler.Probe(ctx, cfg.ProbePort, log)

	log.Info().Str("prefix", cfg.Prefix).Msg("atelier is running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
	return nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
