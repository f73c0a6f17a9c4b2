package config

import (
	"testing"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/stretchr/testify/assert"
)

func TestMergeProvider(t *testing.T) {
	assert := assert.New(t)

	configA := &GominutesConfig{
		Provider: &ProviderConfig{Type: common.PROVIDER_TYPE_GITHUB, Token: "a_token", Endpoint: "https://a.example.com"},
	}
	configB := &GominutesConfig{
		Provider: &ProviderConfig{Token: "b_token"},
	}
	merged := configA.MergeWithAsCopy(configB)

	assert.Equal(common.PROVIDER_TYPE_GITHUB, merged.Provider.Type)
	assert.Equal("b_token", merged.Provider.Token)
	assert.Equal("https://a.example.com", merged.Provider.Endpoint)
	// The sources are untouched
	assert.Equal("a_token", configA.Provider.Token)
}

func TestMergeScalars(t *testing.T) {
	assert := assert.New(t)

	configA := &GominutesConfig{CachePath: "a_cache", Concurrency: 2, RateLimit: 1}
	configB := &GominutesConfig{Concurrency: 10}
	merged := configA.MergeWithAsCopy(configB)

	assert.Equal("a_cache", merged.CachePath)
	assert.Equal(10, merged.Concurrency)
	assert.Equal(1.0, merged.RateLimit)
}

func TestMergeSites(t *testing.T) {
	assert := assert.New(t)

	configA := &GominutesConfig{Sites: &SitesConfig{Include: []string{"a", "shared"}, Exclude: []string{"x"}}}
	configB := &GominutesConfig{Sites: &SitesConfig{Include: []string{"shared", "b"}}}
	merged := configA.MergeWithAsCopy(configB)

	assert.Equal([]string{"a", "shared", "b"}, merged.Sites.Include)
	assert.Equal([]string{"x"}, merged.Sites.Exclude)
}

func TestMergeHostRulesAndExtends(t *testing.T) {
	assert := assert.New(t)

	configA := &GominutesConfig{
		HostRules: []*common.HostRule{{MatchHost: "a.example.com"}},
		Extends:   []string{"base"},
	}
	configB := &GominutesConfig{
		HostRules: []*common.HostRule{{MatchHost: "b.example.com"}},
		Extends:   []string{"base", "other"},
	}
	merged := configA.MergeWithAsCopy(configB)

	assert.Len(merged.HostRules, 2)
	assert.Equal([]string{"base", "other"}, merged.Extends)
}

func TestMergeWithNil(t *testing.T) {
	configA := &GominutesConfig{CachePath: "a_cache"}
	configA.MergeWith(nil)
	assert.Equal(t, "a_cache", configA.CachePath)
}
