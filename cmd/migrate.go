package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrackbot/fintrack/internal/database"
	"github.com/fintrackbot/fintrack/pkg/logger"
)

var rollback bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply the embedded schema migrations, or roll back the most recent one with --rollback.`,
	Run: func(cmd *cobra.Command, args []string) {
		runMigrate()
	},
}

func runMigrate() {
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
	defer database.Close(db)

	if rollback {
		if err := database.RollbackMigration(db); err != nil {
			log.Error("rollback failed", "error", err)
			os.Exit(1)
		}
		log.Info("rolled back most recent migration")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")
}
