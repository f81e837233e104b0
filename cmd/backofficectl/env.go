package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/core/services"
	"github.com/SscSPs/property_backoffice/internal/events"
	"github.com/SscSPs/property_backoffice/internal/fixtures"
	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/SscSPs/property_backoffice/internal/repositories/docstore"
)

// cliActor is recorded as the creator of everything the tool writes.
const cliActor = "system:backofficectl"

// env is what every data command needs. Logs go to stderr so stdout stays
// clean for exported documents.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *portssvc.ServiceContainer
	close    func()
}

func openEnv(ctx context.Context) (*env, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	store, closeStore, err := docstore.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	repos := docstore.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos, events.LogPublisher{Logger: logger})
	return &env{cfg: cfg, logger: logger, services: container, close: closeStore}, nil
}

func (e *env) seed(ctx context.Context, path string) (fixtures.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return fixtures.Summary{}, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	data, err := fixtures.Load(f)
	if err != nil {
		return fixtures.Summary{}, err
	}
	return fixtures.Apply(ctx, e.services, data, cliActor, e.logger)
}
