package config

import (
	"github.com/roemer/gominutes/pkg/common"
)

// This type represents the gominutes config object.
type GominutesConfig struct {
	// Settings for the remote that provides the sites and deploys.
	Provider *ProviderConfig `json:"provider" yaml:"provider"`
	// The folder where remote responses are cached. Empty disables caching.
	CachePath string `json:"cachePath" yaml:"cachePath"`
	// The maximum number of sites that are checked concurrently.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
	// The maximum number of remote requests per second. Zero means unlimited.
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	// Patterns to select the sites to report.
	Sites *SitesConfig `json:"sites" yaml:"sites"`
	// A list of rules that can apply to hosts.
	HostRules []*common.HostRule `json:"hostRules" yaml:"hostRules"`
	// A list of other configs to load before this config. All configs are merged together.
	Extends []string `json:"extends" yaml:"extends"`
}

// This type defines configurations regarding the provider.
type ProviderConfig struct {
	// The type of the provider to use, defaults to "netlify".
	Type common.ProviderType `json:"type" yaml:"type"`
	// The url of the api or the path to the dump for the local provider.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	// The token, can reference environment variables like "${NETLIFY_AUTH_TOKEN}".
	Token string `json:"token" yaml:"token"`
}

type SitesConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}
