package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sgimenez0/RoomBooker/internal/config"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/repository"
	"github.com/sgimenez0/RoomBooker/internal/sender"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
	"github.com/sgimenez0/RoomBooker/internal/worker"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.MustLoad()

	lg, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RoomBooker-notifier",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	db, err := dbpg.New(
		cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Master.Close()

	if err = db.Master.PingContext(context.Background()); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	queue := repository.NewNotificationRepo(db)

	senders, err := buildSenders(cfg, lg)
	if err != nil {
		log.Fatalf("init senders: %v", err)
	}

	dispatcher := worker.New(
		queue,
		senders,
		worker.Config{
			PollInterval: cfg.Worker.PollInterval,
			BatchSize:    cfg.Worker.BatchSize,
			BackoffBase:  cfg.Worker.BackoffBase,
			BackoffCap:   cfg.Worker.BackoffCap,
			MaxAttempts:  cfg.Worker.MaxAttempts,
		},
		lg,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher.Start(ctx)
}

func buildSenders(cfg *config.Config, lg logger.Logger) (map[domain.NotificationChannel]ports.Sender, error) {
	if cfg.Worker.DryRun {
		dry := sender.NewDryRunSender(lg)
		return map[domain.NotificationChannel]ports.Sender{
			domain.ChannelEmail:    dry,
			domain.ChannelTelegram: dry,
		}, nil
	}

	tg, err := sender.NewTelegramSender(cfg.Telegram.BotToken)
	if err != nil {
		return nil, err
	}

	return map[domain.NotificationChannel]ports.Sender{
		domain.ChannelEmail: sender.NewSMTPSender(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		),
		domain.ChannelTelegram: tg,
	}, nil
}
