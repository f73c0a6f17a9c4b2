package common

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
)

type ProviderSettings struct {
	// The logger to use for the provider.
	Logger *slog.Logger
	// The type of the provider.
	Provider ProviderType
	// The token which is used to interact with the provider. Is expanded from environment variables.
	Token string
	// The endpoint to use when interacting with the provider. Optional, each provider has a default.
	Endpoint string
	// Host rules that might apply when using this provider.
	HostRules []*HostRule
}

func (ps *ProviderSettings) TokenExpanded() string {
	return os.ExpandEnv(ps.Token)
}

// Gets the token for the given endpoint. A token set directly has precedence over host rules.
func (ps *ProviderSettings) TokenForEndpoint(endpoint string) string {
	if token := ps.TokenExpanded(); token != "" {
		return token
	}
	host := endpoint
	if parsedUrl, err := url.Parse(endpoint); err == nil && parsedUrl.Host != "" {
		host = parsedUrl.Host
	}
	for _, hostRule := range ps.HostRules {
		if hostRule.MatchHost != "" && strings.Contains(host, hostRule.MatchHost) {
			return hostRule.TokenExpanded()
		}
	}
	return ""
}
