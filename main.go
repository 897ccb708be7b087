// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
	"github.com/Kpacaychuk/type-quiz-bot/middleware"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
	"github.com/Kpacaychuk/type-quiz-bot/router"
	"github.com/Kpacaychuk/type-quiz-bot/store"
	"github.com/Kpacaychuk/type-quiz-bot/telegram"
)

func main() {
	cliparse.LoadDotEnv()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the state store (creates the schema for SQL backends)
	st, err := store.Open(ctx, cfg)
	if err != nil {
		slog.Error("store open failed", "error", err, "store", cfg.StoreType)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Store ready", "store", cfg.StoreType)

	var rng *rand.Rand
	if cfg.GroupingSeed != 0 {
		rng = rand.New(rand.NewPCG(cfg.GroupingSeed, cfg.GroupingSeed))
	}
	svc, err := polls.NewService(st, polls.RulesFromConfig(cfg), rng)
	if err != nil {
		slog.Error("invalid poll rules", "error", err)
		os.Exit(1)
	}

	// Chat bot is optional
	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		bot = telegram.NewBot(telegram.NewClient(cfg.TelegramToken), svc, cfg.TelegramSecret)
		svc.SetDeliverer(bot)

		if cfg.TelegramWebhookURL != "" {
			if err := bot.RegisterWebhook(ctx, cfg.TelegramWebhookURL); err != nil {
				slog.Error("webhook registration failed", "error", err)
				os.Exit(1)
			}
		} else {
			go func() {
				if err := bot.Poll(ctx); err != nil {
					slog.Error("telegram polling stopped", "error", err)
				}
			}()
		}
	} else {
		slog.Info("TELEGRAM_TOKEN not set, chat bot disabled")
	}

	// Create router
	mux := router.NewRouter(svc, cfg, bot)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
