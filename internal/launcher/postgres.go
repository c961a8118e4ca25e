package launcher

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// provisionDatabase prepares the connector database on the shared Postgres
// server: waits for the server, creates the database when absent and seeds
// it with the init script.
func (l *Launcher) provisionDatabase(ctx context.Context, dbName string) error {
	if err := l.waitForPostgres(ctx); err != nil {
		return err
	}
	if err := l.ensureDatabase(ctx, dbName); err != nil {
		return err
	}
	return l.runInitScript(ctx, dbName)
}

// waitForPostgres polls the server until it answers a ping or the configured
// timeout elapses.
func (l *Launcher) waitForPostgres(ctx context.Context) error {
	deadline := time.Now().Add(time.Duration(l.pg.WaitTimeoutSec) * time.Second)

	for time.Now().Before(deadline) {
		if err := l.pingPostgres(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return fmt.Errorf("postgres not available after %ds", l.pg.WaitTimeoutSec)
}

func (l *Launcher) pingPostgres(ctx context.Context) error {
	db, err := l.openDB("postgres")
	if err != nil {
		return err
	}
	defer db.Close()
	return db.PingContext(ctx)
}

// ensureDatabase creates dbName when it does not exist. The name is built
// internally from the connector type and id, never from request input.
func (l *Launcher) ensureDatabase(ctx context.Context, dbName string) error {
	db, err := l.openDB("postgres")
	if err != nil {
		return err
	}
	defer db.Close()

	var one int
	err = db.QueryRowContext(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", dbName).Scan(&one)
	switch {
	case err == nil:
		l.log.WithField("database", dbName).Info("database already exists")
		return nil
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %q", dbName)); err != nil {
			return fmt.Errorf("create database %s: %w", dbName, err)
		}
		l.log.WithField("database", dbName).Info("database created")
		return nil
	default:
		return fmt.Errorf("check database %s: %w", dbName, err)
	}
}

// runInitScript executes the EDC schema script statement by statement.
// Individual statement failures are logged and skipped so a partially
// applied schema from a previous run does not abort the start.
func (l *Launcher) runInitScript(ctx context.Context, dbName string) error {
	script, err := os.ReadFile(l.initScript)
	if err != nil {
		return fmt.Errorf("read init script: %w", err)
	}

	db, err := l.openDB(dbName)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range splitStatements(string(script)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			l.log.WithError(err).WithField("database", dbName).Warn("init statement failed")
		}
	}

	l.log.WithField("database", dbName).Info("init script executed")
	return nil
}

// splitStatements splits a SQL script on statement-terminating semicolons.
// The init script contains plain DDL, no procedural bodies or semicolons in
// literals.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}
