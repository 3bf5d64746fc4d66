package store

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"bookmarkpage/internal/config"
	"bookmarkpage/internal/models"
	"bookmarkpage/migrations"
)

// Database owns the sqlite connection for the lifetime of the process.
type Database struct {
	db     *sqlx.DB
	logger zerolog.Logger
	env    string
}

// Open connects to the sqlite database and brings the schema up to
// date. Under GO_ENV=test an in-memory database is used instead of the
// configured file. A migration failure is fatal to startup; it is
// logged here and returned to the caller.
func Open(cfg *config.Config, logger zerolog.Logger) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DBPath)
	if cfg.Env == config.EnvTest {
		dsn = "file::memory:?_foreign_keys=on"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Env == config.EnvTest {
		// a second pooled connection would see its own empty :memory: db
		db.SetMaxOpenConns(1)
	} else {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := MigrateFS(db.DB, migrations.FS, "."); err != nil {
		logger.Error().Err(err).Msg(models.LogDBInitFailed)
		db.Close()
		return nil, err
	}

	return &Database{db: db, logger: logger, env: cfg.Env}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func MigrateFS(db *sql.DB, migrationsFS fs.FS, dir string) error {
	goose.SetBaseFS(migrationsFS)
	defer func() {
		goose.SetBaseFS(nil)
	}()
	return Migrate(db, dir)
}

func Migrate(db *sql.DB, dir string) error {
	err := goose.SetDialect("sqlite3")
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	err = goose.Up(db, dir)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// ResetForTest empties every user table and resets the autoincrement
// counters. Deletion order across the tables is not guaranteed, so
// foreign key enforcement is suspended for the duration and restored on
// every exit path.
func (d *Database) ResetForTest() (err error) {
	if d.env != config.EnvTest {
		return fmt.Errorf("ResetForTest can only be called in test environment")
	}

	if _, err = d.db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("failed to disable foreign keys: %w", err)
	}
	defer func() {
		if _, ferr := d.db.Exec("PRAGMA foreign_keys = ON"); ferr != nil && err == nil {
			err = fmt.Errorf("failed to restore foreign keys: %w", ferr)
		}
	}()

	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"bookmark_keywords", "keywords", "bookmarks"} {
		if _, err = tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	if _, err = tx.Exec(`DELETE FROM sqlite_sequence WHERE name IN ('bookmarks', 'keywords', 'bookmark_keywords')`); err != nil {
		return fmt.Errorf("failed to reset sequences: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
