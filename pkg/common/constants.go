package common

type ProviderType string

const (
	PROVIDER_TYPE_GITEA   ProviderType = "gitea"
	PROVIDER_TYPE_GITHUB  ProviderType = "github"
	PROVIDER_TYPE_GITLAB  ProviderType = "gitlab"
	PROVIDER_TYPE_LOCAL   ProviderType = "local"
	PROVIDER_TYPE_NETLIFY ProviderType = "netlify"
)

// A remote operation that can be called thru the gateway.
type Method string

const (
	METHOD_LIST_SITES        Method = "listSites"
	METHOD_LIST_SITE_DEPLOYS Method = "listSiteDeploys"
)

type OutputFormat string

const (
	OUTPUT_FORMAT_JSON OutputFormat = "json"
	OUTPUT_FORMAT_TEXT OutputFormat = "text"
)

// The option key which holds the id of the site for METHOD_LIST_SITE_DEPLOYS.
const OptionSiteId = "site_id"

// The format of a reference date for a full day.
const DateFormat = "2006-01-02"
