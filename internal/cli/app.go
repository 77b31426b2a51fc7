package cli

import (
	"context"
	"fmt"

	"czone-store/internal/config"
	"czone-store/internal/logger"
	"czone-store/internal/metrics"
	"czone-store/internal/product"
	"czone-store/internal/storefront"
	"czone-store/internal/user"

	"go.uber.org/zap"
)

var seedAdmin = user.Profile{
	ID:        1,
	Username:  "admin1",
	Password:  "Admin@123",
	FirstName: "Admin",
	LastName:  "User",
	Address:   "123 Admin St",
}

// app is the wired storefront for one interactive run.
type app struct {
	cfg     *config.Config
	store   *storefront.Store
	started *metrics.Timer
}

func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.UsersFile != "" {
		cfg.UsersFile = opts.UsersFile
	}
	if opts.CatalogFile != "" {
		cfg.CatalogFile = opts.CatalogFile
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	return cfg, nil
}

func newApp(ctx context.Context, opts *RootOptions) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.AppEnv, cfg.LogFile)
	log := logger.FromCtx(ctx)

	seed, err := product.LoadSeedFile(cfg.CatalogFile)
	if err != nil {
		log.Error("failed to load catalog seed", zap.String("path", cfg.CatalogFile), zap.Error(err))
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog := product.NewCatalog(seed...)

	repo := user.NewFileRepository(cfg.UsersFile)
	loadErr := repo.Load(ctx)
	if loadErr != nil {
		// not fatal, but the file stays untouched for the whole run
		log.Error("failed to load accounts, starting with none", zap.String("path", repo.Path()), zap.Error(loadErr))
	}

	users := user.NewService(repo, user.NewLoginLimiter(cfg.LoginRate, cfg.LoginBurst))
	if cfg.SeedAdmin && loadErr == nil {
		if _, _, err := users.EnsureAdmin(ctx, seedAdmin); err != nil {
			log.Warn("seed admin not available", zap.Error(err))
		}
	}

	log.Info("storefront ready",
		zap.String("env", cfg.AppEnv),
		zap.Int("products", len(seed)),
		zap.Int("accounts", len(repo.Users())),
	)

	return &app{
		cfg:     cfg,
		store:   storefront.New(product.NewService(catalog), users, storefront.WithRenderer(storefront.NewRenderer(cfg.Colored()))),
		started: metrics.StartTimer(),
	}, nil
}

func (a *app) close() {
	stats := a.store.Stats()
	logger.L().Info("storefront closed",
		zap.Duration("uptime", a.started.Duration()),
		zap.Uint64("signups", stats.Signups.Load()),
		zap.Uint64("logins", stats.Logins.Load()),
		zap.Uint64("failed_logins", stats.FailedLogins.Load()),
		zap.Uint64("orders", stats.Orders.Load()),
	)
	logger.Sync()
}
