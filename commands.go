package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"home-catering/bot"
	"home-catering/db"
	"home-catering/models"
	"home-catering/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openStore opens the configured catalog store. The returned func releases it.
func openStore(ctx context.Context) (services.KVStore, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		if err := db.Init(ctx, cfg.DB); err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if cfg.Store.AutoMigrate {
			if err := applyMigrations(ctx); err != nil {
				db.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return services.NewPostgresKV(db.Pool), db.Close, nil
	case "sqlite":
		conn, err := db.OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		kv, err := services.NewSQLiteKV(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("sqlite store: %w", err)
		}
		return kv, func() { conn.Close() }, nil
	case "memory":
		return services.NewMemoryKV(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Telegram.Token == "" {
		return errors.New("TOKEN not set")
	}
	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog, err := services.LoadCatalog(ctx, store, logger)
	if err != nil {
		return err
	}
	// Write back right away so a fresh store holds the seed menu.
	if err := services.SaveCatalog(ctx, store, catalog); err != nil {
		logger.Warn("initial catalog save", zap.Error(err))
	}

	b, err := bot.New(cfg, catalog, store, logger.Named("bot"))
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	return runBot(ctx, b, store, catalog)
}

type poller interface {
	Start(ctx context.Context) error
}

// runBot blocks in the bot's update loop, then writes the menu once more so
// an edit whose save failed during the run is not lost.
func runBot(ctx context.Context, b poller, store services.KVStore, catalog *services.Catalog) error {
	err := b.Start(ctx)
	logger.Info("shutting down", zap.Error(err))

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := services.SaveCatalog(saveCtx, store, catalog); serr != nil {
		logger.Warn("final catalog save", zap.Error(serr))
	}
	return err
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := db.Init(ctx, cfg.DB); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	return applyMigrations(ctx)
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dayFlag, _ := cmd.Flags().GetString("day")
	catFlag, _ := cmd.Flags().GetString("category")

	day := services.DayOf(time.Now())
	if dayFlag != "" {
		d, ok := models.ParseDay(dayFlag)
		if !ok {
			return fmt.Errorf("unknown day %q", dayFlag)
		}
		day = d
	}
	category, ok := models.ParseCategory(catFlag)
	if !ok {
		return fmt.Errorf("unknown category %q", catFlag)
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()
	catalog, err := services.LoadCatalog(ctx, store, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, it := range services.VisibleItems(catalog.Items(), category, day) {
		status := "available"
		if !it.IsAvailable {
			status = "sold out"
		}
		fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", it.ID, it.Name, it.Price, status)
	}
	return nil
}

func runResetMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()
	seed, err := services.SeedMenu()
	if err != nil {
		return err
	}
	if err := services.SaveCatalog(ctx, store, services.NewCatalog(seed)); err != nil {
		return err
	}
	logger.Info("menu reset to seed", zap.Int("items", len(seed)))
	return nil
}
