package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
)

type config struct {
	PostgresDSN   string `long:"postgres-dsn" env:"MIGRATIONS_POSTGRES_DSN" default:"postgres://localhost:5432/stackswatch?sslmode=disable" description:"Postgres DSN"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" default:"migrations/postgres" description:"Path to Postgres migration files"`
	Down          bool   `long:"down" description:"roll migrations back instead of applying them"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg); err != nil {
		log.Fatalf("migration run failed: %v", err)
	}
}

func runMigrations(ctx context.Context, cfg config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("migration source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("migration database close error: %v", dbErr)
		}
	}()

	apply := m.Up
	if cfg.Down {
		apply = m.Down
	}

	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return nil
		}
		return err
	}

	log.Println("migrations applied successfully")
	return nil
}

func newMigrator(cfg config) (*migrate.Migrate, error) {
	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(dir))
	m, err := migrate.New(sourceURL, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}
