package deploys

import (
	"strings"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/samber/lo"
)

// Keeps the deploys which were created at the reference date.
// The date is matched as prefix so "2020-05" keeps the whole month.
func FilterByDate(deploys []*common.Deploy, referenceDate string) []*common.Deploy {
	return lo.Filter(deploys, func(deploy *common.Deploy, _ int) bool {
		return strings.HasPrefix(deploy.CreatedAt, referenceDate)
	})
}
