package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/limbo/toki/internal/repository"
	"github.com/limbo/toki/pkg/config"
	"github.com/limbo/toki/pkg/entity"
)

type stores struct {
	kv          repository.KV
	accounts    *repository.AccountsRepository
	moods       *repository.MoodEntriesRepository
	credentials *repository.CredentialsRepository
}

func setupLogger() {
	cfg := config.New()
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetStringOr("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.EqualFold(cfg.GetString("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}

func openKV(cfg *config.Config) (repository.KV, error) {
	driver := strings.ToLower(cfg.GetStringOr("STORAGE_DRIVER", "sqlite"))
	slog.Debug("opening storage", slog.String("driver", driver))
	switch driver {
	case "sqlite":
		return repository.NewSQLiteKV(cfg.GetStringOr("SQLITE_PATH", "data/toki.db")), nil
	case "postgres":
		return repository.NewPgKV(pgConfig(cfg)), nil
	case "memory":
		return repository.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

func openStores() (*stores, error) {
	cfg := config.New()
	kv, err := openKV(cfg)
	if err != nil {
		return nil, err
	}
	opts := repository.Options{
		StrictReads: cfg.GetBool("STRICT_READS", false),
		Queue:       repository.NewWriteQueue(cfg.GetBool("SERIALIZE_WRITES", true)),
	}
	return &stores{
		kv:          kv,
		accounts:    repository.NewAccountsRepo(kv, opts),
		moods:       repository.NewMoodEntriesRepo(kv, opts),
		credentials: repository.NewCredentialsRepo(kv),
	}, nil
}

// seededIDs continues numbering after the largest stored mood entry id.
func seededIDs(ctx context.Context, moods *repository.MoodEntriesRepository) (*entity.IDGenerator, error) {
	maxID, err := moods.MaxID(ctx)
	if err != nil {
		return nil, err
	}
	ids := entity.NewIDGenerator()
	ids.Seed(maxID)
	return ids, nil
}
