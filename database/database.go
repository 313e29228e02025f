// Package database opens the PostgreSQL pool shared by every request and
// provides the small helpers the stores build on.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/irsalhamdi/masterclass-store/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var ErrDBNotFound = sql.ErrNoRows

// URL renders cfg as a postgres connection URL.
func URL(cfg config.DB) string {
	sslMode := "require"
	if cfg.DisableTLS {
		sslMode = "disable"
	}

	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host,
		Path:     cfg.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open builds the connection pool described by cfg and verifies it answers.
func Open(cfg config.DB) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := StatusCheck(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// StatusCheck pings the database until it answers or ctx is done.
func StatusCheck(ctx context.Context, db *sqlx.DB) error {
	var pingErr error
	for attempts := 1; ; attempts++ {
		pingErr = db.PingContext(ctx)
		if pingErr == nil {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("pinging database: %w", pingErr)
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}

	const q = `SELECT true`
	var ok bool
	if err := db.QueryRowContext(ctx, q).Scan(&ok); err != nil {
		return fmt.Errorf("querying database: %w", err)
	}
	return nil
}
