package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/roemer/gominutes/pkg/deploys"
)

// Fills unset values with their defaults. Should be called after all sources are merged.
func (c *GominutesConfig) ApplyDefaults() {
	if c.Provider == nil {
		c.Provider = &ProviderConfig{}
	}
	if c.Provider.Type == "" {
		c.Provider.Type = common.PROVIDER_TYPE_NETLIFY
	}
	if c.Concurrency <= 0 {
		c.Concurrency = deploys.DefaultConcurrency
	}
	if c.Sites == nil {
		c.Sites = &SitesConfig{}
	}
}

// Checks the config for values that cannot work.
func (c *GominutesConfig) Validate() error {
	if c.RateLimit < 0 {
		return fmt.Errorf("rateLimit must not be negative, got %v", c.RateLimit)
	}
	for _, hostRule := range c.HostRules {
		if hostRule == nil || strings.TrimSpace(hostRule.MatchHost) == "" {
			return fmt.Errorf("host rules need a 'matchHost'")
		}
	}
	if c.Provider != nil && c.Provider.Endpoint != "" && c.Provider.Type != common.PROVIDER_TYPE_LOCAL {
		if _, err := url.ParseRequestURI(os.ExpandEnv(c.Provider.Endpoint)); err != nil {
			return fmt.Errorf("invalid provider endpoint '%s': %w", c.Provider.Endpoint, err)
		}
	}
	return nil
}

func (c *GominutesConfig) ToProviderSettings(logger *slog.Logger) *common.ProviderSettings {
	settings := &common.ProviderSettings{
		Logger:    logger,
		HostRules: c.HostRules,
	}
	if c.Provider != nil {
		settings.Provider = c.Provider.Type
		settings.Token = c.Provider.Token
		settings.Endpoint = c.Provider.Endpoint
	}
	return settings
}

func (c *GominutesConfig) ToSiteFilter() *deploys.SiteFilter {
	if c.Sites == nil {
		return &deploys.SiteFilter{}
	}
	return &deploys.SiteFilter{
		Include: c.Sites.Include,
		Exclude: c.Sites.Exclude,
	}
}
