package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roemer/gominutes/pkg/common"
	"golang.org/x/time/rate"
)

var ErrUnsupportedMethod = errors.New("method not supported by the provider")

// The gateway calls remote operations of a provider and caches their responses.
// A cached response is returned as is, the remote is never asked again for the same call.
type Gateway struct {
	provider common.IProvider
	cache    common.IResponseCache
	limiter  *rate.Limiter
	logger   *slog.Logger
}

type GatewaySettings struct {
	// The logger to use for the gateway.
	Logger *slog.Logger
	// The provider which executes the remote calls.
	Provider common.IProvider
	// The cache to use. A nil cache disables caching.
	Cache common.IResponseCache
	// Maximum number of remote calls per second. Zero or less means unlimited.
	RateLimit float64
}

func NewGateway(settings *GatewaySettings) *Gateway {
	logger := settings.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gw := &Gateway{
		provider: settings.Provider,
		cache:    settings.Cache,
		logger:   logger.With(slog.String("component", "gateway")),
	}
	if settings.RateLimit > 0 {
		gw.limiter = rate.NewLimiter(rate.Limit(settings.RateLimit), 1)
	}
	return gw
}

func (gw *Gateway) Call(ctx context.Context, method common.Method, options common.CallOptions) (json.RawMessage, error) {
	// Get the path in the cache, empty means caching is disabled
	cachePath := ""
	if gw.cache != nil {
		var err error
		if cachePath, err = gw.cache.PathFor(method, options); err != nil {
			return nil, err
		}
	}
	isCachingEnabled := cachePath != ""

	// Use the cached response if there is one
	if isCachingEnabled {
		exists, err := gw.cache.Has(cachePath)
		if err != nil {
			return nil, fmt.Errorf("failed checking the cache for '%s': %w", method, err)
		}
		if exists {
			gw.logger.Debug(fmt.Sprintf("Using cached response for '%s'", method))
			return gw.cache.Read(cachePath)
		}
	}

	// Call the remote
	response, err := gw.invoke(ctx, method, options)
	if err != nil {
		return nil, err
	}

	if isCachingEnabled {
		if err := gw.cache.Write(cachePath, response); err != nil {
			return nil, err
		}
	}
	return response, nil
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func (gw *Gateway) invoke(ctx context.Context, method common.Method, options common.CallOptions) (json.RawMessage, error) {
	operation, ok := gw.provider.Operations()[method]
	if !ok || operation == nil {
		return nil, fmt.Errorf("%w: '%s' (%s)", ErrUnsupportedMethod, method, gw.provider.Type())
	}
	if gw.limiter != nil {
		if err := gw.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	gw.logger.Debug(fmt.Sprintf("Calling '%s' on %s", method, gw.provider.Type()))
	response, err := operation(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("call '%s' failed: %w", method, err)
	}
	if !json.Valid(response) {
		return nil, fmt.Errorf("call '%s' returned invalid json", method)
	}
	return response, nil
}
