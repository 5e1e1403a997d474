// Package storage opens the account and session backends selected by the
// server configuration.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophgram/internal/logging"
	"github.com/dmitrijs2005/gophgram/internal/server/accounts"
	"github.com/dmitrijs2005/gophgram/internal/server/migrations"
	"github.com/dmitrijs2005/gophgram/internal/server/sessions"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

// Storage bundles the backends and the connections behind them.
type Storage struct {
	Accounts accounts.Repository
	Sessions sessions.Store

	db  *sql.DB
	rdb *redis.Client
}

// Open connects to PostgreSQL when dsn is set and to Redis when redisURL is
// set. Either one left empty falls back to an in-memory backend.
func Open(ctx context.Context, dsn, redisURL string, l logging.Logger) (*Storage, error) {
	s := &Storage{}

	if dsn == "" {
		l.Warn(ctx, "no database DSN configured, accounts are kept in memory")
		s.Accounts = accounts.NewMemoryRepository()
	} else {
		db, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.Accounts = accounts.NewPostgresRepository(db)
	}

	if redisURL == "" {
		l.Warn(ctx, "no redis URL configured, sessions are kept in memory")
		s.Sessions = sessions.NewMemoryStore()
	} else {
		rdb, err := sessions.NewRedisClient(ctx, redisURL)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.rdb = rdb
		s.Sessions = sessions.NewRedisStore(rdb)
	}

	return s, nil
}

// OpenPostgres opens dsn with the pgx driver and applies the embedded
// migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations brings the schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Close releases the connections that Open made.
func (s *Storage) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.rdb != nil {
		errs = append(errs, s.rdb.Close())
	}
	return errors.Join(errs...)
}
