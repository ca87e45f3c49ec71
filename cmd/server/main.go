package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nkale/homeboard/internal/auth"
	"github.com/nkale/homeboard/internal/config"
	"github.com/nkale/homeboard/internal/notify"
	"github.com/nkale/homeboard/internal/server"
	"github.com/nkale/homeboard/internal/service"
	"github.com/nkale/homeboard/internal/storage/sqlite"
	"github.com/nkale/homeboard/pkg/logging"
)

func main() {
	// Optional .env for local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env", "error", err)
	}

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	// Event publishing is optional; without a broker notifications are
	// still stored, just not published.
	var publisher *notify.Publisher
	if cfg.AMQPURL != "" {
		publisher, err = notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Error("Failed to connect to broker", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		slog.Info("Event publisher connected", "exchange", cfg.AMQPExchange)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	notifier := notify.New(store, publisher)

	srv := server.New(
		store,
		jwtManager,
		service.NewAuthService(authenticator, jwtManager),
		service.NewHouseholdService(store),
		service.NewChoreService(store, notifier),
		service.NewExpenseService(store, notifier),
		service.NewShoppingService(store, notifier),
		service.NewWallService(store, notifier),
		service.NewNotificationService(store),
	)

	// h2c allows HTTP/2 without TLS for clients that want it.
	handler := h2c.NewHandler(srv.Handler(), &http2.Server{})

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
