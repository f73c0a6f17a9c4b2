package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roemer/gominutes/pkg/common"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// Reports the pipelines of the GitLab projects the user is a member of.
type GitlabProvider struct {
	*providerBase
}

func NewGitlabProvider(settings *common.ProviderSettings) *GitlabProvider {
	return &GitlabProvider{
		providerBase: newProviderBase(settings, "https://gitlab.com/api/v4"),
	}
}

func (p *GitlabProvider) Type() common.ProviderType {
	return common.PROVIDER_TYPE_GITLAB
}

func (p *GitlabProvider) Operations() map[common.Method]common.Operation {
	return map[common.Method]common.Operation{
		common.METHOD_LIST_SITES:        p.listSites,
		common.METHOD_LIST_SITE_DEPLOYS: p.listSiteDeploys,
	}
}

func (p *GitlabProvider) listSites(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	client, err := p.createClient()
	if err != nil {
		return nil, err
	}
	sites := []*common.RawSite{}
	listOptions := &gitlab.ListProjectsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
		Membership:  gitlab.Ptr(true),
	}
	for {
		projects, resp, err := client.Projects.ListProjects(listOptions, gitlab.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, project := range projects {
			sites = append(sites, &common.RawSite{Name: project.Name, SiteId: project.PathWithNamespace})
		}
		if resp.NextPage == 0 {
			break
		}
		listOptions.Page = resp.NextPage
	}
	return marshalRaw(sites)
}

func (p *GitlabProvider) listSiteDeploys(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	siteId, err := requireSiteId(options)
	if err != nil {
		return nil, err
	}
	client, err := p.createClient()
	if err != nil {
		return nil, err
	}
	pipelines, _, err := client.Pipelines.ListProjectPipelines(siteId, &gitlab.ListProjectPipelinesOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	rawDeploys := []*common.RawDeploy{}
	for _, pipeline := range pipelines {
		rawDeploys = append(rawDeploys, &common.RawDeploy{
			Id:         fmt.Sprint(pipeline.ID),
			Title:      pipelineTitle(pipeline.Ref, pipeline.SHA),
			CreatedAt:  formatTime(timeOrZero(pipeline.CreatedAt)),
			DeployTime: secondsBetween(timeOrZero(pipeline.CreatedAt), timeOrZero(pipeline.UpdatedAt)),
		})
	}
	return marshalRaw(rawDeploys)
}

func (p *GitlabProvider) createClient() (*gitlab.Client, error) {
	if err := p.requireToken(); err != nil {
		return nil, err
	}
	return gitlab.NewClient(p.token, gitlab.WithBaseURL(p.endpoint))
}

func pipelineTitle(ref string, sha string) string {
	if len(sha) > 8 {
		sha = sha[:8]
	}
	if sha == "" {
		return ref
	}
	return fmt.Sprintf("%s (%s)", ref, sha)
}

func timeOrZero(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}
