package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"code.gitea.io/sdk/gitea"
	"github.com/roemer/gominutes/pkg/common"
)

// The amount of recent commits whose statuses are reported per repository.
const giteaCommitCount = 20

// Reports the commit statuses of the recent commits of Gitea repositories.
// Each status context on a commit counts as one deploy.
type GiteaProvider struct {
	*providerBase
}

func NewGiteaProvider(settings *common.ProviderSettings) *GiteaProvider {
	return &GiteaProvider{
		providerBase: newProviderBase(settings, "https://gitea.com"),
	}
}

func (p *GiteaProvider) Type() common.ProviderType {
	return common.PROVIDER_TYPE_GITEA
}

func (p *GiteaProvider) Operations() map[common.Method]common.Operation {
	return map[common.Method]common.Operation{
		common.METHOD_LIST_SITES:        p.listSites,
		common.METHOD_LIST_SITE_DEPLOYS: p.listSiteDeploys,
	}
}

func (p *GiteaProvider) listSites(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	client, err := p.createClient(ctx)
	if err != nil {
		return nil, err
	}
	sites := []*common.RawSite{}
	listOptions := gitea.ListReposOptions{ListOptions: gitea.ListOptions{Page: 1, PageSize: 50}}
	for {
		repositories, resp, err := client.ListMyRepos(listOptions)
		if err != nil {
			return nil, err
		}
		for _, repository := range repositories {
			sites = append(sites, &common.RawSite{Name: repository.Name, SiteId: repository.FullName})
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		listOptions.Page = resp.NextPage
	}
	return marshalRaw(sites)
}

func (p *GiteaProvider) listSiteDeploys(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	siteId, err := requireSiteId(options)
	if err != nil {
		return nil, err
	}
	owner, repository := (&common.Site{SiteId: siteId}).SplitId()
	if owner == "" {
		return nil, fmt.Errorf("site id '%s' is not in the form 'owner/repository'", siteId)
	}
	client, err := p.createClient(ctx)
	if err != nil {
		return nil, err
	}
	commits, _, err := client.ListRepoCommits(owner, repository, gitea.ListCommitOptions{
		ListOptions: gitea.ListOptions{Page: 1, PageSize: giteaCommitCount},
	})
	if err != nil {
		return nil, err
	}
	rawDeploys := []*common.RawDeploy{}
	for _, commit := range commits {
		if commit.CommitMeta == nil {
			continue
		}
		statuses, _, err := client.ListStatuses(owner, repository, commit.SHA, gitea.ListStatusesOption{
			ListOptions: gitea.ListOptions{Page: 1, PageSize: 50},
		})
		if err != nil {
			return nil, fmt.Errorf("failed getting the statuses of commit '%s': %w", commit.SHA, err)
		}
		message := ""
		if commit.RepoCommit != nil {
			message = commit.RepoCommit.Message
		}
		rawDeploys = append(rawDeploys, statusesToRawDeploys(firstLine(message), statuses)...)
	}
	return marshalRaw(rawDeploys)
}

func (p *GiteaProvider) createClient(ctx context.Context) (*gitea.Client, error) {
	if err := p.requireToken(); err != nil {
		return nil, err
	}
	return gitea.NewClient(p.endpoint, gitea.SetToken(p.token), gitea.SetContext(ctx))
}

// Groups the statuses of one commit by context. A deploy lasts from the first to the last status of its context.
func statusesToRawDeploys(title string, statuses []*gitea.Status) []*common.RawDeploy {
	type span struct {
		lastId int64
		start  time.Time
		end    time.Time
	}
	spans := map[string]*span{}
	contexts := []string{}
	for _, status := range statuses {
		if status == nil {
			continue
		}
		end := status.Updated
		if end.Before(status.Created) {
			end = status.Created
		}
		current, ok := spans[status.Context]
		if !ok {
			spans[status.Context] = &span{lastId: status.ID, start: status.Created, end: end}
			contexts = append(contexts, status.Context)
			continue
		}
		if status.Created.Before(current.start) {
			current.start = status.Created
		}
		if end.After(current.end) {
			current.end = end
		}
		current.lastId = max(current.lastId, status.ID)
	}
	slices.Sort(contexts)

	rawDeploys := []*common.RawDeploy{}
	for _, statusContext := range contexts {
		current := spans[statusContext]
		deployTitle := title
		if statusContext != "" {
			deployTitle = fmt.Sprintf("%s [%s]", title, statusContext)
		}
		rawDeploys = append(rawDeploys, &common.RawDeploy{
			Id:         fmt.Sprint(current.lastId),
			Title:      deployTitle,
			CreatedAt:  formatTime(current.start),
			DeployTime: secondsBetween(current.start, current.end),
		})
	}
	return rawDeploys
}
