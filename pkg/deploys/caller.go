package deploys

import (
	"context"
	"encoding/json"

	"github.com/roemer/gominutes/pkg/common"
)

// Calls remote operations, usually the cached gateway.
type Caller interface {
	Call(ctx context.Context, method common.Method, options common.CallOptions) (json.RawMessage, error)
}
