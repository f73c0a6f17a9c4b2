package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/roemer/gominutes/pkg/common"
)

const netlifyDefaultEndpoint = "https://api.netlify.com/api/v1"

// The amount of deploy pages fetched per site. The newest deploys come first.
const netlifyDeployPages = 1

type NetlifyProvider struct {
	*providerBase
	client *http.Client
}

func NewNetlifyProvider(settings *common.ProviderSettings) *NetlifyProvider {
	return &NetlifyProvider{
		providerBase: newProviderBase(settings, netlifyDefaultEndpoint),
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *NetlifyProvider) Type() common.ProviderType {
	return common.PROVIDER_TYPE_NETLIFY
}

func (p *NetlifyProvider) Operations() map[common.Method]common.Operation {
	return map[common.Method]common.Operation{
		common.METHOD_LIST_SITES:        p.listSites,
		common.METHOD_LIST_SITE_DEPLOYS: p.listSiteDeploys,
	}
}

func (p *NetlifyProvider) listSites(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	return p.getPages(ctx, fmt.Sprintf("%s/sites?filter=all&per_page=100", p.endpoint), 0)
}

func (p *NetlifyProvider) listSiteDeploys(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	siteId, err := requireSiteId(options)
	if err != nil {
		return nil, err
	}
	return p.getPages(ctx, fmt.Sprintf("%s/sites/%s/deploys?per_page=100", p.endpoint, url.PathEscape(siteId)), netlifyDeployPages)
}

// Follows the "next" links and concatenates the json arrays of all pages. A limit of 0 fetches all pages.
func (p *NetlifyProvider) getPages(ctx context.Context, startUrl string, limit int) (json.RawMessage, error) {
	records := []json.RawMessage{}
	nextUrl := startUrl
	for page := 1; nextUrl != ""; page++ {
		p.logger.Debug(fmt.Sprintf("Fetching page %d", page), slog.String("url", nextUrl))
		body, resp, err := common.HttpUtil.GetWithBearer(ctx, p.client, nextUrl, p.token)
		if err != nil {
			return nil, err
		}
		pageRecords := []json.RawMessage{}
		if err := json.Unmarshal(body, &pageRecords); err != nil {
			return nil, fmt.Errorf("failed parsing the response from '%s': %w", nextUrl, err)
		}
		records = append(records, pageRecords...)

		if limit > 0 && page >= limit {
			break
		}
		next, err := common.HttpUtil.GetNextPageURL(resp)
		if err != nil {
			return nil, err
		}
		nextUrl = ""
		if next != nil {
			nextUrl = next.String()
		}
	}
	return marshalRaw(records)
}
