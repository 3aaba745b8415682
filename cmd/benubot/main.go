package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benuhq/benubot/core/bootstrap"
	"github.com/benuhq/benubot/core/cmd"
	"github.com/benuhq/benubot/core/database"
	"github.com/benuhq/benubot/internal/bot"
	"github.com/benuhq/benubot/internal/config"
	"github.com/benuhq/benubot/internal/sheets"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	os.Exit(cmd.Run("benubot", run))
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rt, err := bootstrap.Setup(cfg.Core())
	if err != nil {
		return err
	}
	cmd.LogStartup(ctx, "benubot")

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	bot.New(cfg, rt, store).Register()
	rt.Start(ctx)
	return nil
}

func buildStore(cfg *config.Config) (sheets.Store, error) {
	if cfg.Store.Backend == config.StoreMemory {
		return sheets.NewMemoryStore(), nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.Database); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sheets.NewPostgresStore(db), nil
}
