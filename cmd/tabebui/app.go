package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/tabebui/internal/concierge"
	"github.com/limbo/tabebui/internal/repository"
	"github.com/limbo/tabebui/internal/service"
	"github.com/limbo/tabebui/internal/tracker"
	"github.com/limbo/tabebui/pkg/config"
)

// app is what commands run against.
type app struct {
	cfg         *config.Config
	serv        *service.ProgressService
	defaultUser uuid.UUID
}

func loadApp() (*app, error) {
	return buildApp(config.New())
}

func buildApp(cfg *config.Config) (*app, error) {
	logger := config.NewLogger(cfg.Log)
	repo, err := newRepository(cfg)
	if err != nil {
		return nil, err
	}
	opts := []service.Option{
		service.WithLogger(logger),
		service.WithTrackerOptions(tracker.WithLocation(cfg.Location())),
		service.WithSystemPrompt(cfg.Concierge.SystemPrompt),
	}
	if cfg.Concierge.APIKey != "" {
		opts = append(opts, service.WithConcierge(concierge.New(concierge.Config{
			APIKey:    cfg.Concierge.APIKey,
			Model:     cfg.Concierge.Model,
			MaxTokens: cfg.Concierge.MaxTokens,
		}, logger)))
	} else {
		logger.Debug("concierge disabled, no api key configured")
	}
	return &app{
		cfg:         cfg,
		serv:        service.NewProgressService(repo, opts...),
		defaultUser: cfg.DefaultUserID(),
	}, nil
}

func newRepository(cfg *config.Config) (repository.StateRepositoryI, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return repository.NewProgressRepo(pgConfig(cfg)), nil
	case config.StorageMemory:
		slog.Warn("memory storage keeps progress only until the process exits")
		return repository.NewMemoryRepo(), nil
	case config.StorageFile:
		return repository.NewFileRepo(cfg.Storage.Dir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	}
}
