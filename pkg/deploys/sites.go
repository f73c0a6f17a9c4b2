package deploys

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/samber/lo"
)

// Patterns to select sites by name or id.
type SiteFilter struct {
	// Only sites matching one of these patterns are kept. Empty keeps all.
	Include []string
	// Sites matching one of these patterns are removed.
	Exclude []string
}

// Gets all sites from the remote, applying the filter.
func FetchSites(ctx context.Context, caller Caller, filter *SiteFilter) ([]*common.Site, error) {
	response, err := caller.Call(ctx, common.METHOD_LIST_SITES, common.CallOptions{})
	if err != nil {
		return nil, err
	}
	rawSites := []*common.RawSite{}
	if err := json.Unmarshal(response, &rawSites); err != nil {
		return nil, fmt.Errorf("failed parsing the sites: %w", err)
	}
	sites := lo.FilterMap(rawSites, func(raw *common.RawSite, _ int) (*common.Site, bool) {
		if raw == nil {
			return nil, false
		}
		return &common.Site{Name: raw.Name, SiteId: raw.SiteId}, true
	})
	return filter.Apply(sites)
}

// Returns the sites which pass the filter.
func (f *SiteFilter) Apply(sites []*common.Site) ([]*common.Site, error) {
	if f == nil || (len(f.Include) == 0 && len(f.Exclude) == 0) {
		return sites, nil
	}
	filtered := []*common.Site{}
	for _, site := range sites {
		if len(f.Include) > 0 {
			included, err := siteMatches(site, f.Include)
			if err != nil {
				return nil, err
			}
			if !included {
				continue
			}
		}
		excluded, err := siteMatches(site, f.Exclude)
		if err != nil {
			return nil, err
		}
		if !excluded {
			filtered = append(filtered, site)
		}
	}
	return filtered, nil
}

func siteMatches(site *common.Site, patterns []string) (bool, error) {
	if isMatch, err := common.MatchesAnyPattern(site.Name, patterns...); err != nil || isMatch {
		return isMatch, err
	}
	return common.MatchesAnyPattern(site.SiteId, patterns...)
}
