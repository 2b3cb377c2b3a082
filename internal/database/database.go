package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fintrackbot/fintrack/internal"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pragmas applied per connection through the DSN. SQLite scopes pragmas
// to a single connection, so setting them with Exec would leave every
// other pooled connection without them; foreign_keys in particular must
// be on everywhere for the cascade-delete invariants to hold.
const dsnOptions = "?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL"

// Open creates the SQLite database connection with pool and pragma tuning.
// TranslateError is enabled so repositories can match gorm's portable
// ErrDuplicatedKey / ErrForeignKeyViolated sentinels.
func Open(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path+dsnOptions), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
