package common

import "os"

// A host rule that is applied when using a certain host.
type HostRule struct {
	// The host that needs to match in order to use this rule.
	MatchHost string `json:"matchHost" yaml:"matchHost"`
	// A token to authenticate with the host.
	Token string `json:"token" yaml:"token"`
}

// Expands the token with environment variables.
func (hr *HostRule) TokenExpanded() string {
	return os.ExpandEnv(hr.Token)
}
