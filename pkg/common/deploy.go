package common

// A deploy as returned by the remote for METHOD_LIST_SITE_DEPLOYS.
type RawDeploy struct {
	Id         string  `json:"id" yaml:"id"`
	Title      string  `json:"title" yaml:"title"`
	CreatedAt  string  `json:"created_at" yaml:"created_at"`
	DeployTime float64 `json:"deploy_time,omitempty" yaml:"deploy_time"`
}

// This type represents a single deploy of a site.
type Deploy struct {
	// The id of the deploy.
	Id string `json:"id"`
	// The title of the deploy, usually the commit message.
	Title string `json:"title"`
	// The creation date as returned by the remote.
	CreatedAt string `json:"createdAt"`
	// The time the deploy took in seconds. Zero if unknown.
	Time int `json:"time"`
}

// The deploys of a site for a reference date.
type SiteDeployReport struct {
	Name    string    `json:"name"`
	Deploys []*Deploy `json:"deploys"`
}

// Sums the time of all deploys in the report.
func (r *SiteDeployReport) TotalTime() int {
	total := 0
	for _, deploy := range r.Deploys {
		total += deploy.Time
	}
	return total
}
