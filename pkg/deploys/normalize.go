package deploys

import (
	"math"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/samber/lo"
)

// Converts a raw deploy into a deploy. A missing or invalid deploy time is reported as zero.
func Normalize(raw *common.RawDeploy) *common.Deploy {
	seconds := 0
	if raw.DeployTime > 0 && !math.IsInf(raw.DeployTime, 1) {
		seconds = int(math.Round(raw.DeployTime))
	}
	return &common.Deploy{
		Id:        raw.Id,
		Title:     raw.Title,
		CreatedAt: raw.CreatedAt,
		Time:      seconds,
	}
}

func NormalizeAll(raws []*common.RawDeploy) []*common.Deploy {
	return lo.FilterMap(raws, func(raw *common.RawDeploy, _ int) (*common.Deploy, bool) {
		if raw == nil {
			return nil, false
		}
		return Normalize(raw), true
	})
}
