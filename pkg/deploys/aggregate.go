package deploys

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/roemer/gominutes/pkg/common"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 5

// Collects the deploys of many sites for a reference date.
type Aggregator struct {
	caller      Caller
	concurrency int
	logger      *slog.Logger
}

func NewAggregator(caller Caller, concurrency int, logger *slog.Logger) *Aggregator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		caller:      caller,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Gets all deploys of the given site, longest first.
func (a *Aggregator) BySiteId(ctx context.Context, siteId string) ([]*common.Deploy, error) {
	response, err := a.caller.Call(ctx, common.METHOD_LIST_SITE_DEPLOYS, common.CallOptions{common.OptionSiteId: siteId})
	if err != nil {
		return nil, err
	}
	rawDeploys := []*common.RawDeploy{}
	if err := json.Unmarshal(response, &rawDeploys); err != nil {
		return nil, fmt.Errorf("failed parsing the deploys: %w", err)
	}
	return Rank(NormalizeAll(rawDeploys)), nil
}

// Gets the deploys of the given site which were created at the reference date, longest first.
func (a *Aggregator) ByDateAndSiteId(ctx context.Context, referenceDate, siteId string) ([]*common.Deploy, error) {
	allDeploys, err := a.BySiteId(ctx, siteId)
	if err != nil {
		return nil, err
	}
	return FilterByDate(allDeploys, referenceDate), nil
}

// Builds one report per site, in the order of the given sites.
// Fails with the error of the first site that could not be processed.
func (a *Aggregator) Aggregate(ctx context.Context, sites []*common.Site, referenceDate string) ([]*common.SiteDeployReport, error) {
	reports := make([]*common.SiteDeployReport, len(sites))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for index, site := range sites {
		g.Go(func() error {
			a.logger.Info(fmt.Sprintf("Checking for deploys of %s", site.Name))
			siteDeploys, err := a.ByDateAndSiteId(gctx, referenceDate, site.SiteId)
			if err != nil {
				return fmt.Errorf("site '%s' (%s): %w", site.Name, site.SiteId, err)
			}
			a.logger.Debug(fmt.Sprintf("Checked for deploys of %s", site.Name), slog.Int("deploys", len(siteDeploys)))
			reports[index] = &common.SiteDeployReport{Name: site.Name, Deploys: siteDeploys}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
