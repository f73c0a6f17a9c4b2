package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/roemer/gominutes/pkg/common"
)

// The content of a dump file used by the local provider.
type LocalDump struct {
	Sites   []*common.RawSite              `json:"sites" yaml:"sites"`
	Deploys map[string][]*common.RawDeploy `json:"deploys" yaml:"deploys"`
}

// Serves sites and deploys from a yaml or json file. The endpoint is the path to the file.
type LocalProvider struct {
	*providerBase
	loadOnce sync.Once
	dump     *LocalDump
	loadErr  error
}

func NewLocalProvider(settings *common.ProviderSettings) *LocalProvider {
	return &LocalProvider{
		providerBase: newProviderBase(settings, "gominutes-dump.yaml"),
	}
}

func (p *LocalProvider) Type() common.ProviderType {
	return common.PROVIDER_TYPE_LOCAL
}

func (p *LocalProvider) Operations() map[common.Method]common.Operation {
	return map[common.Method]common.Operation{
		common.METHOD_LIST_SITES:        p.listSites,
		common.METHOD_LIST_SITE_DEPLOYS: p.listSiteDeploys,
	}
}

func (p *LocalProvider) listSites(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	dump, err := p.load()
	if err != nil {
		return nil, err
	}
	if dump.Sites == nil {
		return marshalRaw([]*common.RawSite{})
	}
	return marshalRaw(dump.Sites)
}

func (p *LocalProvider) listSiteDeploys(ctx context.Context, options common.CallOptions) (json.RawMessage, error) {
	siteId, err := requireSiteId(options)
	if err != nil {
		return nil, err
	}
	dump, err := p.load()
	if err != nil {
		return nil, err
	}
	siteDeploys := dump.Deploys[siteId]
	if siteDeploys == nil {
		siteDeploys = []*common.RawDeploy{}
	}
	return marshalRaw(siteDeploys)
}

func (p *LocalProvider) load() (*LocalDump, error) {
	p.loadOnce.Do(func() {
		p.logger.Debug(fmt.Sprintf("Loading dump from '%s'", p.endpoint))
		content, err := os.ReadFile(p.endpoint)
		if err != nil {
			p.loadErr = fmt.Errorf("failed reading the dump: %w", err)
			return
		}
		dump := &LocalDump{}
		// Json is valid yaml so both formats are read by the yaml parser
		if err := yaml.Unmarshal(content, dump); err != nil {
			p.loadErr = fmt.Errorf("failed parsing the dump '%s': %w", p.endpoint, err)
			return
		}
		p.dump = dump
	})
	return p.dump, p.loadErr
}
