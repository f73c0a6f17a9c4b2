package gominutes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roemer/gominutes/pkg/cache"
	"github.com/roemer/gominutes/pkg/common"
	"github.com/roemer/gominutes/pkg/config"
	"github.com/roemer/gominutes/pkg/deploys"
	"github.com/roemer/gominutes/pkg/gateway"
	"github.com/roemer/gominutes/pkg/providers"
)

// Load a given configuration.
func LoadConfig(ctx context.Context, configPath string) (*config.GominutesConfig, error) {
	return config.Load(ctx, configPath)
}

// Get a provider with the given settings.
func GetProvider(settings *common.ProviderSettings) (common.IProvider, error) {
	return providers.GetProvider(settings)
}

// Runs the sites and deploys queries for a loaded configuration.
type Runner struct {
	logger     *slog.Logger
	config     *config.GominutesConfig
	gateway    *gateway.Gateway
	aggregator *deploys.Aggregator
}

// Creates a runner with the provider, cache and gateway described by the config.
func NewRunner(cfg *config.GominutesConfig, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := providers.GetProvider(cfg.ToProviderSettings(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug(fmt.Sprintf("Prepared provider: %s", provider.Type()))

	responseCache := cache.NewResponseCache(cfg.CachePath, logger)
	if responseCache.Enabled() {
		logger.Debug(fmt.Sprintf("Caching responses in '%s'", cfg.CachePath))
	}
	gw := gateway.NewGateway(&gateway.GatewaySettings{
		Logger:    logger,
		Provider:  provider,
		Cache:     responseCache,
		RateLimit: cfg.RateLimit,
	})
	return &Runner{
		logger:     logger,
		config:     cfg,
		gateway:    gw,
		aggregator: deploys.NewAggregator(gw, cfg.Concurrency, logger),
	}, nil
}

// Gets the sites which pass the site filters of the config.
func (r *Runner) Sites(ctx context.Context) ([]*common.Site, error) {
	r.logger.Info("Fetching all sites")
	sites, err := deploys.FetchSites(ctx, r.gateway, r.config.ToSiteFilter())
	if err != nil {
		return nil, err
	}
	r.logger.Info(fmt.Sprintf("%s found", common.GetSingularPluralString(len(sites), "website", "websites")))
	return sites, nil
}

// Gets the report of all sites for the reference date.
func (r *Runner) Report(ctx context.Context, referenceDate string) ([]*common.SiteDeployReport, error) {
	sites, err := r.Sites(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := r.aggregator.Aggregate(ctx, sites, referenceDate)
	if err != nil {
		return nil, err
	}
	r.logger.Info("All deploys checked")
	return reports, nil
}
