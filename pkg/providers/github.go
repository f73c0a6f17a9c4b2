package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/go-github/v80/github"
	"github.com/roemer/gominutes/pkg/common"
)

// Reports the GitHub Actions workflow runs of the repositories of the user.
type GitHubProvider struct {
	*providerBase
}

func NewGitHubProvider(settings *common.ProviderSettings) *GitHubProvider {
	return &GitHubProvider{
		providerBase: newProviderBase(settings, "https://api.github.com"),
	}
}

func (p *GitHubProvider) Type() common.ProviderType {
	return common.PROVIDER_TYPE_GITHUB
}

func (p *GitHubProvider) Operations() map[common.Method]common.Operation {
	return map[common.Method]common.Operation{
		common.METHOD_LIST_SITES:        p.listSites,
		common.METHOD_LIST_SITE_DEPLOYS: p.listSiteDeploys,
	}
}

func (p *GitHubProvider) listSites(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	client, err := p.createClient()
	if err != nil {
		return nil, err
	}
	sites := []*common.RawSite{}
	listOptions := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repositories, resp, err := client.Repositories.ListByAuthenticatedUser(ctx, listOptions)
		if err != nil {
			return nil, err
		}
		for _, repository := range repositories {
			sites = append(sites, &common.RawSite{Name: repository.GetName(), SiteId: repository.GetFullName()})
		}
		if resp.NextPage == 0 {
			break
		}
		listOptions.Page = resp.NextPage
	}
	return marshalRaw(sites)
}

func (p *GitHubProvider) listSiteDeploys(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	siteId, err := requireSiteId(options)
	if err != nil {
		return nil, err
	}
	owner, repository := (&common.Site{SiteId: siteId}).SplitId()
	if owner == "" {
		return nil, fmt.Errorf("site id '%s' is not in the form 'owner/repository'", siteId)
	}
	client, err := p.createClient()
	if err != nil {
		return nil, err
	}
	runs, _, err := client.Actions.ListRepositoryWorkflowRuns(ctx, owner, repository, &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, err
	}
	rawDeploys := []*common.RawDeploy{}
	for _, run := range runs.WorkflowRuns {
		rawDeploys = append(rawDeploys, workflowRunToRawDeploy(run))
	}
	return marshalRaw(rawDeploys)
}

func (p *GitHubProvider) createClient() (*github.Client, error) {
	if err := p.requireToken(); err != nil {
		return nil, err
	}
	client := github.NewClient(nil).WithAuthToken(p.token)
	if p.endpoint != "https://api.github.com" {
		return client.WithEnterpriseURLs(p.endpoint, p.endpoint)
	}
	return client, nil
}

func workflowRunToRawDeploy(run *github.WorkflowRun) *common.RawDeploy {
	title := run.GetDisplayTitle()
	if title == "" {
		title = firstLine(run.GetHeadCommit().GetMessage())
	}
	if title == "" {
		title = run.GetName()
	}
	started := run.GetRunStartedAt().Time
	if started.IsZero() {
		started = run.GetCreatedAt().Time
	}
	return &common.RawDeploy{
		Id:         fmt.Sprint(run.GetID()),
		Title:      title,
		CreatedAt:  formatTime(run.GetCreatedAt().Time),
		DeployTime: secondsBetween(started, run.GetUpdatedAt().Time),
	}
}
