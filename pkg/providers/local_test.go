package providers

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDump = `sites:
  - name: monsters
    site_id: m-id
  - name: npcs
    site_id: n-id
deploys:
  m-id:
    - id: id-fix
      title: "fix: x"
      created_at: "2020-05-04"
      deploy_time: 42
    - id: id-chore
      title: "chore: z"
      created_at: "2020-05-01"
`

func newTestLocalProvider(t *testing.T, fileName string, content string) *LocalProvider {
	dumpPath := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(dumpPath, []byte(content), 0644))
	return NewLocalProvider(&common.ProviderSettings{Provider: common.PROVIDER_TYPE_LOCAL, Endpoint: dumpPath})
}

func TestLocalProviderFromYaml(t *testing.T) {
	assert := assert.New(t)

	provider := newTestLocalProvider(t, "dump.yaml", testDump)
	operations := provider.Operations()

	response, err := operations[common.METHOD_LIST_SITES](context.Background(), common.CallOptions{})
	require.NoError(t, err)
	assert.JSONEq(`[{"name": "monsters", "site_id": "m-id"}, {"name": "npcs", "site_id": "n-id"}]`, string(response))

	response, err = operations[common.METHOD_LIST_SITE_DEPLOYS](context.Background(), common.CallOptions{common.OptionSiteId: "m-id"})
	require.NoError(t, err)
	assert.JSONEq(`[
		{"id": "id-fix", "title": "fix: x", "created_at": "2020-05-04", "deploy_time": 42},
		{"id": "id-chore", "title": "chore: z", "created_at": "2020-05-01"}
	]`, string(response))

	// Sites without deploys return an empty list
	response, err = operations[common.METHOD_LIST_SITE_DEPLOYS](context.Background(), common.CallOptions{common.OptionSiteId: "n-id"})
	require.NoError(t, err)
	assert.Equal("[]", string(response))
}

func TestLocalProviderFromJson(t *testing.T) {
	provider := newTestLocalProvider(t, "dump.json", `{"sites": [{"name": "blog", "site_id": "b-id"}], "deploys": {}}`)

	response, err := provider.Operations()[common.METHOD_LIST_SITES](context.Background(), common.CallOptions{})
	require.NoError(t, err)

	sites := []*common.RawSite{}
	require.NoError(t, json.Unmarshal(response, &sites))
	assert.Equal(t, []*common.RawSite{{Name: "blog", SiteId: "b-id"}}, sites)
}

func TestLocalProviderMissingFile(t *testing.T) {
	provider := NewLocalProvider(&common.ProviderSettings{Provider: common.PROVIDER_TYPE_LOCAL, Endpoint: filepath.Join(t.TempDir(), "missing.yaml")})

	_, err := provider.Operations()[common.METHOD_LIST_SITES](context.Background(), common.CallOptions{})
	assert.ErrorContains(t, err, "failed reading the dump")
}
