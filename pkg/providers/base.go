package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/roemer/gominutes/pkg/common"
)

var ErrNoToken = errors.New("no provider token defined")

// The environment variables holding the token when none is configured.
var defaultTokenEnvs = map[common.ProviderType]string{
	common.PROVIDER_TYPE_GITEA:   "GITEA_TOKEN",
	common.PROVIDER_TYPE_GITHUB:  "GITHUB_TOKEN",
	common.PROVIDER_TYPE_GITLAB:  "GITLAB_TOKEN",
	common.PROVIDER_TYPE_NETLIFY: "NETLIFY_AUTH_TOKEN",
}

type providerBase struct {
	logger   *slog.Logger
	settings *common.ProviderSettings
	endpoint string
	token    string
}

func newProviderBase(settings *common.ProviderSettings, defaultEndpoint string) *providerBase {
	endpoint := strings.TrimSuffix(os.ExpandEnv(settings.Endpoint), "/")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	logger := settings.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &providerBase{
		logger:   logger.With(slog.String("provider", string(settings.Provider))),
		settings: settings,
		endpoint: endpoint,
		token:    ResolveToken(settings, endpoint),
	}
}

func (p *providerBase) requireToken() error {
	if p.token == "" {
		return fmt.Errorf("%w for '%s', set it in the config or with $%s", ErrNoToken, p.settings.Provider, defaultTokenEnvs[p.settings.Provider])
	}
	return nil
}

// Gets the token for the provider: configured token, matching host rule or the default environment variable.
func ResolveToken(settings *common.ProviderSettings, endpoint string) string {
	if token := settings.TokenForEndpoint(endpoint); token != "" {
		return token
	}
	if envName, ok := defaultTokenEnvs[settings.Provider]; ok {
		return os.Getenv(envName)
	}
	return ""
}

// Creates the provider for the given settings. Remote providers need a token.
func GetProvider(settings *common.ProviderSettings) (common.IProvider, error) {
	var provider common.IProvider
	var base *providerBase
	switch settings.Provider {
	case common.PROVIDER_TYPE_GITEA:
		giteaProvider := NewGiteaProvider(settings)
		provider, base = giteaProvider, giteaProvider.providerBase
	case common.PROVIDER_TYPE_GITHUB:
		githubProvider := NewGitHubProvider(settings)
		provider, base = githubProvider, githubProvider.providerBase
	case common.PROVIDER_TYPE_GITLAB:
		gitlabProvider := NewGitlabProvider(settings)
		provider, base = gitlabProvider, gitlabProvider.providerBase
	case common.PROVIDER_TYPE_NETLIFY, "":
		netlifyProvider := NewNetlifyProvider(settings)
		provider, base = netlifyProvider, netlifyProvider.providerBase
	case common.PROVIDER_TYPE_LOCAL:
		return NewLocalProvider(settings), nil
	default:
		return nil, fmt.Errorf("no provider defined for '%s'", settings.Provider)
	}
	if err := base.requireToken(); err != nil {
		return nil, err
	}
	return provider, nil
}

////////// Helpers

func marshalRaw(value any) (json.RawMessage, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func requireSiteId(options common.CallOptions) (string, error) {
	siteId := options.SiteId()
	if siteId == "" {
		return "", fmt.Errorf("option '%s' is required", common.OptionSiteId)
	}
	return siteId, nil
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

// Gets the seconds between start and end, zero if one of them is unknown.
func secondsBetween(start time.Time, end time.Time) float64 {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return end.Sub(start).Seconds()
}

func firstLine(value string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(value), "\n")
	return strings.TrimSpace(line)
}
