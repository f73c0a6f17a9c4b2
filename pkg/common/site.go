package common

import "strings"

// A site as returned by the remote for METHOD_LIST_SITES.
type RawSite struct {
	Name   string `json:"name" yaml:"name"`
	SiteId string `json:"site_id" yaml:"site_id"`
}

// This type represents a site which consumes build minutes.
type Site struct {
	Name   string `json:"name"`
	SiteId string `json:"siteId"`
}

// Splits the id into "owner" and "repository" for providers where the id is a repository path.
func (s *Site) SplitId() (string, string) {
	parts := strings.SplitN(s.SiteId, "/", 2)
	if len(parts) == 1 {
		return "", parts[0]
	}
	return parts[0], parts[1]
}
