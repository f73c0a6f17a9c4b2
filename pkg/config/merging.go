package config

import (
	"github.com/samber/lo"
)

func (configA *GominutesConfig) MergeWithAsCopy(configB *GominutesConfig) *GominutesConfig {
	merged := &GominutesConfig{}
	merged.MergeWith(configA)
	merged.MergeWith(configB)
	return merged
}

func (configA *GominutesConfig) MergeWith(configB *GominutesConfig) {
	if configB == nil {
		return
	}
	// Provider
	if configA.Provider == nil {
		configA.Provider = &ProviderConfig{}
	}
	configA.Provider.MergeWith(configB.Provider)
	// CachePath
	if configB.CachePath != "" {
		configA.CachePath = configB.CachePath
	}
	// Concurrency
	if configB.Concurrency != 0 {
		configA.Concurrency = configB.Concurrency
	}
	// RateLimit
	if configB.RateLimit != 0 {
		configA.RateLimit = configB.RateLimit
	}
	// Sites
	if configA.Sites == nil {
		configA.Sites = &SitesConfig{}
	}
	configA.Sites.MergeWith(configB.Sites)
	// Host Rules
	configA.HostRules = append(configA.HostRules, configB.HostRules...)
	// Extends
	configA.Extends = lo.Union(configA.Extends, configB.Extends)
}

func (providerConfigA *ProviderConfig) MergeWith(providerConfigB *ProviderConfig) {
	if providerConfigB == nil {
		return
	}
	// Type
	if providerConfigB.Type != "" {
		providerConfigA.Type = providerConfigB.Type
	}
	// Endpoint
	if providerConfigB.Endpoint != "" {
		providerConfigA.Endpoint = providerConfigB.Endpoint
	}
	// Token
	if providerConfigB.Token != "" {
		providerConfigA.Token = providerConfigB.Token
	}
}

func (sitesConfigA *SitesConfig) MergeWith(sitesConfigB *SitesConfig) {
	if sitesConfigB == nil {
		return
	}
	sitesConfigA.Include = lo.Union(sitesConfigA.Include, sitesConfigB.Include)
	sitesConfigA.Exclude = lo.Union(sitesConfigA.Exclude, sitesConfigB.Exclude)
}
