package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	catalogindex "github.com/KirkDiggler/atlas-api/internal/catalog"
	"github.com/KirkDiggler/atlas-api/internal/config"
	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
	"github.com/KirkDiggler/atlas-api/internal/orchestrators/catalog"
	prefsorch "github.com/KirkDiggler/atlas-api/internal/orchestrators/preferences"
	"github.com/KirkDiggler/atlas-api/internal/pkg/clock"
	"github.com/KirkDiggler/atlas-api/internal/pkg/idgen"
	"github.com/KirkDiggler/atlas-api/internal/preferences"
	redisclient "github.com/KirkDiggler/atlas-api/internal/redis"
	prefrepo "github.com/KirkDiggler/atlas-api/internal/repositories/preferences"
	"github.com/KirkDiggler/atlas-api/internal/sanitize"
)

// handlers is everything the server registers
type handlers struct {
	catalog     *v1alpha1.CatalogHandler
	preferences *v1alpha1.PreferenceHandler
	cleanup     func()
}

// loadIndex reads and indexes the catalog directory
func loadIndex(ctx context.Context, dir string) (*catalogindex.Index, error) {
	docs, err := catalogindex.Load(ctx, os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", dir, err)
	}
	return catalogindex.NewIndex(docs), nil
}

// newPreferenceRepository picks Redis when an address is configured
func newPreferenceRepository(ctx context.Context, cfg config.RedisConfig) (prefrepo.Repository, func(), error) {
	if !cfg.Enabled() {
		slog.WarnContext(ctx, "no redis address configured, preferences are kept in memory")
		return prefrepo.NewInMemory(), func() {}, nil
	}

	client, err := redisclient.New(cfg.Endpoints(), &redisclient.Options{
		Username:           cfg.Username,
		Password:           cfg.Password,
		DB:                 cfg.DB,
		PoolSize:           cfg.PoolSize,
		MinIdleConns:       cfg.MinIdleConns,
		MaxRetries:         cfg.MaxRetries,
		UseTLS:             cfg.UseTLS,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redisclient.Ping(ctx, client, cfg.DialTimeout); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	repo, err := prefrepo.NewRedis(&prefrepo.RedisConfig{
		Client: client,
		TTL:    cfg.PreferenceTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create preference repository: %w", err)
	}

	slog.InfoContext(ctx, "preferences stored in redis", "endpoints", cfg.Endpoints())
	return repo, cleanup, nil
}

// buildHandlers wires the catalog and preference stacks from configuration
func buildHandlers(ctx context.Context, cfg *config.Config) (*handlers, error) {
	index, err := loadIndex(ctx, cfg.Catalog.Dir)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "catalog loaded", "dir", cfg.Catalog.Dir, "counts", index.Counts())

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		Index:             index,
		Sanitizer:         sanitize.New(&sanitize.Config{DeniedFields: cfg.Catalog.DeniedFields}),
		Clock:             clock.New(),
		FallbackLanguages: cfg.Catalog.FallbackLanguages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}

	repo, cleanup, err := newPreferenceRepository(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	h, err := buildPreferenceHandlers(index, repo, cfg.Preferences)
	if err != nil {
		cleanup()
		return nil, err
	}

	catalogHandler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{
		CatalogService: catalogService,
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create catalog handler: %w", err)
	}

	h.catalog = catalogHandler
	h.cleanup = cleanup
	return h, nil
}

func buildPreferenceHandlers(index *catalogindex.Index, repo prefrepo.Repository, cfg config.PreferencesConfig) (*handlers, error) {
	store, err := preferences.NewStore(&preferences.StoreConfig{Repository: repo})
	if err != nil {
		return nil, fmt.Errorf("failed to create preference store: %w", err)
	}

	defaults := &preferences.Defaults{
		SidebarMin:   cfg.SidebarMin,
		SidebarMax:   cfg.SidebarMax,
		SidebarWidth: cfg.SidebarWidth,
	}
	if m, ok := index.DefaultMap(); ok {
		defaults.SelectedMap = m.ID
	}

	atoms, err := preferences.NewAtoms(store, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to create preference atoms: %w", err)
	}

	preferenceService, err := prefsorch.NewOrchestrator(&prefsorch.Config{
		Atoms:       atoms,
		Index:       index,
		IDGenerator: idgen.NewUUID("client"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create preference orchestrator: %w", err)
	}

	preferenceHandler, err := v1alpha1.NewPreferenceHandler(&v1alpha1.PreferenceHandlerConfig{
		PreferenceService: preferenceService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create preference handler: %w", err)
	}

	return &handlers{preferences: preferenceHandler}, nil
}
