package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/fintrackbot/fintrack/internal/bot"
	"github.com/fintrackbot/fintrack/internal/category"
	categorySqlite "github.com/fintrackbot/fintrack/internal/category/sqlite"
	"github.com/fintrackbot/fintrack/internal/database"
	"github.com/fintrackbot/fintrack/internal/stats"
	"github.com/fintrackbot/fintrack/internal/transaction"
	transactionSqlite "github.com/fintrackbot/fintrack/internal/transaction/sqlite"
	"github.com/fintrackbot/fintrack/internal/transport/rest"
	"github.com/fintrackbot/fintrack/internal/user"
	userSqlite "github.com/fintrackbot/fintrack/internal/user/sqlite"
	"github.com/fintrackbot/fintrack/pkg/logger"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Long:  `Run the Telegram conversation driver together with the liveness probe server.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBot()
	},
}

func runBot() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Format, cfg.Logging.Level)
	log := logger.L()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := userSqlite.NewUserRepository(db)
	categoryRepo := categorySqlite.NewCategoryRepository(db)
	transactionRepo := transactionSqlite.NewTransactionRepository(db)

	services := bot.Services{
		Users:        user.NewService(userRepo, log),
		Categories:   category.NewService(categoryRepo, log),
		Transactions: transaction.NewService(transactionRepo, categoryRepo, log),
		Stats:        stats.NewService(transactionRepo, log),
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to unwrap sql connection", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	rest.RegisterRoutes(router, sqlDB)

	probe := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	probeErrChan := make(chan error, 1)
	go func() {
		log.Info("starting probe server", "address", probe.Addr)
		probeErrChan <- probe.ListenAndServe()
	}()

	api, err := bot.Connect(cfg.Telegram.Token, cfg.Telegram.Debug)
	if err != nil {
		log.Error("failed to connect to telegram", "error", err)
		os.Exit(1)
	}

	sessions := bot.NewSessionStore(cfg.Session.IdleTimeout)
	driver := bot.New(api, services, sessions)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botErrChan := make(chan error, 1)
	go func() {
		botErrChan <- driver.Start(ctx, cfg.Telegram.PollTimeout)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("received signal, shutting down", "signal", sig)
	case err := <-probeErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("probe server failed", "error", err)
		}
	case err := <-botErrChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("bot stopped", "error", err)
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := probe.Shutdown(shutdownCtx); err != nil {
		log.Error("probe server shutdown error", "error", err)
	}
	if err := database.Close(db); err != nil {
		log.Error("database close error", "error", err)
	}

	log.Info("stopped")
}
