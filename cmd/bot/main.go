package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	bootLogger := logger.New(config.Defaults())

	cfg, err := config.Load()
	if err != nil {
		var cfgErr *homework.ConfigError
		if errors.As(err, &cfgErr) && len(cfgErr.Missing) > 0 {
			bootLogger.WithField("missing", cfgErr.Missing).Fatal("Required environment variables are missing")
		}
		bootLogger.WithError(err).Fatal("Could not load application configuration")
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"log_level":     cfg.LogLevel,
		"environment":   cfg.Environment,
		"poll_schedule": cfg.PollSchedule,
		"chat_id":       cfg.Credentials.TelegramChatID,
	}).Info("Configuration loaded")

	waiter, err := scheduler.NewIntervalWaiter(cfg.PollSchedule, log.WithField("component", "scheduler"))
	if err != nil {
		log.WithError(err).Fatal("Could not create poll scheduler")
	}

	bot, err := telegram.NewBot(cfg.Credentials.TelegramToken, cfg.TelegramAPIURL, cfg.RequestTimeout)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}

	notifier := app.NewTelegramNotifier(
		telegram.NewTelebotAdapter(bot),
		cfg.Credentials.TelegramChatID,
		cfg.NotifyRatePerSec,
		log.WithField("component", "notifier"),
	)
	fetcher := practicum.NewClient(cfg.PracticumEndpoint, cfg.Credentials.PracticumToken, cfg.RequestTimeout)
	poller := app.NewStatusPoller(cfg.Credentials, fetcher, notifier, waiter, log.WithField("component", "poller"))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil {
		stop()
		log.WithError(err).Fatal("Status poller could not start")
	}
	log.Info("Application shut down gracefully.")
}
