package common

import (
	"context"
	"encoding/json"
)

// The options that are passed to a remote operation. Must be serializable to json.
type CallOptions map[string]any

// Gets the site id from the options, empty if not set.
func (o CallOptions) SiteId() string {
	if value, ok := o[OptionSiteId].(string); ok {
		return value
	}
	return ""
}

// A remote operation that returns the raw json response.
type Operation func(ctx context.Context, options CallOptions) (json.RawMessage, error)

// This is the interface that needs to be implemented by all providers.
type IProvider interface {
	// Gets the type of the provider.
	Type() ProviderType
	// Gets the remote operations the provider supports.
	Operations() map[Method]Operation
}

// This is the interface for the cache that stores remote responses.
type IResponseCache interface {
	// Gets the path where the response for the given call is stored. Empty if caching is disabled.
	PathFor(method Method, options CallOptions) (string, error)
	// Checks if there is a stored response at the path.
	Has(path string) (bool, error)
	// Reads the stored response at the path.
	Read(path string) (json.RawMessage, error)
	// Stores the response at the path.
	Write(path string, value json.RawMessage) error
}
